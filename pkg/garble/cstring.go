package garble

import "errors"

// ErrInteriorNUL is returned by NewCString for input containing a NUL
// byte.
var ErrInteriorNUL = errors.New("garble: interior NUL byte")

// CString is a byte string with the C-string invariant: it contains no
// NUL bytes. Garbling perturbs each byte through GarbleUint8; any byte
// that would become zero is rewritten to '?' so the invariant holds on
// the output as well.
type CString []byte

// NewCString builds a CString from s, rejecting interior NUL bytes.
// The terminator itself is not stored.
func NewCString(s string) (CString, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, ErrInteriorNUL
		}
	}
	return CString(s), nil
}

func (c CString) String() string {
	return string(c)
}

func (c CString) garbleSelf(g Garbler) any {
	if c == nil {
		return c
	}
	out := make(CString, len(c))
	for i, b := range c {
		nb := g.GarbleUint8(b)
		if nb == 0 {
			nb = '?'
		}
		out[i] = nb
	}
	return out
}
