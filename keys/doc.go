// Package keys decodes raw terminal input into key events.
//
// Decoding is a small state machine over single bytes:
//
//	start   --ESC-->        esc
//	esc     --'['-->        csi
//	esc     --'O'|'0'-->    ss3
//	csi     --A B C D H F-> arrow / home / end
//	csi     --'1'..'8'-->   csi-num
//	csi-num --'~'-->        home / delete / end / page up / page down
//	ss3     --A B C D H F-> arrow / home / end
//
// Any other byte after an escape, or running out of input mid-sequence, yields
// a bare escape and the bytes read so far are dropped.
package keys
