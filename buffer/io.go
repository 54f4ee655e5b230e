package buffer

import (
	"bufio"
	"bytes"
	"io"

	"atlas/row"
)

// ReadFrom replaces the contents of the buffer with the lines read from r.
// Trailing '\n' and '\r' bytes are stripped from every line. The buffer is
// clean afterwards and the cursor is at the origin.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	rows := row.NewStore(b.Rows.TabStop())
	br := bufio.NewReader(r)

	var n int64
	for {
		line, err := br.ReadBytes('\n')
		n += int64(len(line))
		if len(line) > 0 {
			rows.InsertRow(rows.Len(), bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, err
		}
	}

	rows.Clean()
	b.Rows = rows
	b.Cursor = Cursor{}
	return n, nil
}

// Bytes serializes the buffer with a '\n' after every row, the last included.
func (b *Buffer) Bytes() []byte {
	var out bytes.Buffer
	for y := range b.Rows.Len() {
		out.Write(b.Rows.Raw(y))
		out.WriteByte('\n')
	}
	return out.Bytes()
}

// WriteTo writes the serialized buffer to w in a single write.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}
