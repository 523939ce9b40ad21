package encoding

// Buffer is a contiguous run of encoded bytes.
type Buffer []byte

// Wire is an encoding split across several buffers, as produced by
// scatter writes or received in chunks.
type Wire []Buffer

// Join flattens w. A Wire with one segment is returned as-is.
func (w Wire) Join() []byte {
	switch len(w) {
	case 0:
		return []byte{}
	case 1:
		return w[0]
	}
	ret := make([]byte, 0, w.Length())
	for _, seg := range w {
		ret = append(ret, seg...)
	}
	return ret
}

func (w Wire) Length() uint64 {
	var n uint64
	for _, seg := range w {
		n += uint64(len(seg))
	}
	return n
}
