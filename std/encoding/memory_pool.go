package encoding

import (
	"sync"

	"github.com/cespare/xxhash"
)

// hashScratch holds the encoding buffer reused across hash computations.
type hashScratch struct {
	buf []byte
}

var hashScratchPool = sync.Pool{
	New: func() any { return &hashScratch{buf: make([]byte, 0, 256)} },
}

// pooledHash encodes size bytes with fill into a pooled buffer and returns their xxhash.
func pooledHash(size int, fill func(Buffer) int) uint64 {
	s := hashScratchPool.Get().(*hashScratch)
	defer hashScratchPool.Put(s)

	if cap(s.buf) < size {
		s.buf = make([]byte, size)
	}
	buf := s.buf[:size]
	fill(buf)
	return xxhash.Sum64(buf)
}
