package encoding

// Encoder builds a TLV encoding from back to front.
// Each Prepend* call places bytes in front of everything written so far and returns
// the number of bytes added, so a parent element can be finished by prepending
// its TLV-LENGTH and TLV-TYPE once the children are in place.
type Encoder struct {
	buf []byte
	off int
}

// NewEncoder creates an Encoder with an initial capacity hint.
func NewEncoder(capacity int) *Encoder {
	if capacity <= 0 {
		capacity = 64
	}
	return &Encoder{
		buf: make([]byte, capacity),
		off: capacity,
	}
}

// front makes room for n bytes and returns the slice to fill.
func (e *Encoder) front(n int) []byte {
	if e.off < n {
		used := len(e.buf) - e.off
		newCap := max(2*len(e.buf), used+n+64)
		nbuf := make([]byte, newCap)
		copy(nbuf[newCap-used:], e.buf[e.off:])
		e.buf = nbuf
		e.off = newCap - used
	}
	e.off -= n
	return e.buf[e.off : e.off+n]
}

// Len returns the number of bytes encoded.
func (e *Encoder) Len() int {
	return len(e.buf) - e.off
}

// Bytes returns the encoded bytes.
// The slice aliases the Encoder's storage and is invalidated by the next Prepend.
func (e *Encoder) Bytes() []byte {
	return e.buf[e.off:]
}

func (e *Encoder) PrependBytes(b []byte) int {
	copy(e.front(len(b)), b)
	return len(b)
}

func (e *Encoder) PrependTLNum(v TLNum) int {
	return v.EncodeInto(e.front(v.EncodingLength()))
}

func (e *Encoder) PrependNat(v Nat) int {
	return v.EncodeInto(e.front(v.EncodingLength()))
}

// PrependTL prepends the TLV-TYPE and TLV-LENGTH of an element whose value,
// of length l, has already been prepended.
func (e *Encoder) PrependTL(typ TLNum, l int) int {
	n := e.PrependTLNum(TLNum(l))
	return n + e.PrependTLNum(typ)
}

func (e *Encoder) PrependBytesBlock(typ TLNum, val []byte) int {
	n := e.PrependBytes(val)
	return n + e.PrependTL(typ, n)
}

func (e *Encoder) PrependNatBlock(typ TLNum, v uint64) int {
	n := e.PrependNat(Nat(v))
	return n + e.PrependTL(typ, n)
}

func (e *Encoder) PrependBlock(b Block) int {
	return b.EncodeInto(e.front(b.Size()))
}

// PrependName prepends a Name element including its TL prefix.
func (e *Encoder) PrependName(n Name) int {
	l := n.EncodingLength()
	n.EncodeInto(e.front(l))
	return l + e.PrependTL(TypeName, l)
}
