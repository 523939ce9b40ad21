package encoding

import (
	"io"
)

// WireView is a parsing view of a contiguous Buffer.
// It lives entirely on the stack; reads return sub-slices without copy.
type WireView struct {
	buf Buffer
	pos int
}

func NewBufferView(buf Buffer) WireView {
	return WireView{buf: buf}
}

// NewWireView joins the wire and returns a view over it.
func NewWireView(wire Wire) WireView {
	return NewBufferView(wire.Join())
}

func (r *WireView) IsEOF() bool {
	return r.pos >= len(r.buf)
}

func (r *WireView) Pos() int {
	return r.pos
}

func (r *WireView) Length() int {
	return len(r.buf)
}

func (r *WireView) ReadByte() (byte, error) {
	if r.IsEOF() {
		return 0, io.EOF
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *WireView) Skip(n int) error {
	if n < 0 || n > len(r.buf)-r.pos {
		return ErrBufferOverflow
	}
	r.pos += n
	return nil
}

// ReadBuf returns the next size bytes without copy.
func (r *WireView) ReadBuf(size int) ([]byte, error) {
	if size < 0 || size > len(r.buf)-r.pos {
		return nil, ErrBufferOverflow
	}
	ret := r.buf[r.pos : r.pos+size]
	r.pos += size
	return ret, nil
}

// Delegate returns a view over the next size bytes and skips them in r.
func (r *WireView) Delegate(size int) WireView {
	if size < 0 || size > len(r.buf)-r.pos {
		return WireView{} // invalid
	}
	ret := WireView{buf: r.buf[r.pos : r.pos+size]}
	r.pos += size
	return ret
}

// Rest returns the unread bytes.
func (r WireView) Rest() []byte {
	return r.buf[r.pos:]
}
