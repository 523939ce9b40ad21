package lp

import (
	"strconv"

	enc "github.com/named-data/ndnlp/std/encoding"
)

type CachePolicyType uint64

const CachePolicyNoCache CachePolicyType = 1

func (t CachePolicyType) String() string {
	if t == CachePolicyNoCache {
		return "NoCache"
	}
	return strconv.FormatUint(uint64(t), 10)
}

func CachePolicyTypeFromString(s string) (CachePolicyType, error) {
	if s == CachePolicyNoCache.String() {
		return CachePolicyNoCache, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, enc.ErrFormat{Msg: "unknown CachePolicyType: " + s}
	}
	return CachePolicyType(v), nil
}

// CachePolicyHeader is the value of the CachePolicy field.
type CachePolicyHeader struct {
	Type CachePolicyType
}

func (h CachePolicyHeader) encode() ([]byte, error) {
	if h.Type != CachePolicyNoCache {
		return nil, enc.ErrFormat{Msg: "unknown CachePolicyType " + h.Type.String()}
	}
	return enc.NewNatBlock(TypeCachePolicyType, uint64(h.Type)).Bytes(), nil
}

func decodeCachePolicy(val enc.Buffer) (CachePolicyHeader, error) {
	elems, err := enc.NewBlock(TypeCachePolicy, val).Elements()
	if err != nil {
		return CachePolicyHeader{}, err
	}
	if len(elems) == 0 || elems[0].Typ != TypeCachePolicyType {
		return CachePolicyHeader{}, enc.ErrSkipRequired{Name: "CachePolicyType", TypeNum: TypeCachePolicyType}
	}
	v, err := elems[0].Nat()
	if err != nil {
		return CachePolicyHeader{}, err
	}
	if CachePolicyType(v) != CachePolicyNoCache {
		return CachePolicyHeader{}, enc.ErrFormat{Msg: "unknown CachePolicyType " + strconv.FormatUint(v, 10)}
	}
	return CachePolicyHeader{Type: CachePolicyType(v)}, nil
}
