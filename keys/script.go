package keys

import "io"

// Script is a Source replaying fixed input. Each chunk is followed by one
// empty read, as if the read timeout expired; after the last chunk PollByte
// returns io.EOF.
type Script struct {
	chunks []string
	chunk  int
	pos    int
}

func NewScript(chunks ...string) *Script {
	return &Script{chunks: chunks}
}

func (s *Script) PollByte() (byte, bool, error) {
	if s.chunk >= len(s.chunks) {
		return 0, false, io.EOF
	}
	cur := s.chunks[s.chunk]
	if s.pos < len(cur) {
		c := cur[s.pos]
		s.pos++
		return c, true, nil
	}
	s.chunk++
	s.pos = 0
	return 0, false, nil
}

// Drained reports whether every byte of every chunk has been read.
func (s *Script) Drained() bool {
	last := len(s.chunks) - 1
	return s.chunk > last || s.chunk == last && s.pos == len(s.chunks[last])
}
