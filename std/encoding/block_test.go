package encoding_test

import (
	"testing"

	enc "github.com/named-data/ndnlp/std/encoding"
	tu "github.com/named-data/ndnlp/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestBlockParse(t *testing.T) {
	tu.SetT(t)

	buf := []byte{0x51, 0x02, 0xa0, 0xa1, 0x50, 0x00, 0xff}
	b, rest, err := enc.ParseBlock(buf)
	require.NoError(t, err)
	require.Equal(t, enc.TLNum(0x51), b.Typ)
	require.Equal(t, []byte{0xa0, 0xa1}, []byte(b.Val))
	require.Equal(t, 4, b.Size())
	require.Equal(t, []byte{0x51, 0x02, 0xa0, 0xa1}, b.Bytes())
	require.Equal(t, []byte{0x50, 0x00, 0xff}, []byte(rest))

	b, rest, err = enc.ParseBlock(rest)
	require.NoError(t, err)
	require.Equal(t, enc.TLNum(0x50), b.Typ)
	require.Equal(t, 0, len(b.Val))
	require.Equal(t, []byte{0xff}, []byte(rest))

	// truncated
	_, _, err = enc.ParseBlock(rest)
	require.Equal(t, enc.ErrBufferOverflow, err)
	_, _, err = enc.ParseBlock([]byte{0x51, 0x03, 0x01})
	require.Equal(t, enc.ErrBufferOverflow, err)
	_, _, err = enc.ParseBlock(nil)
	require.Equal(t, enc.ErrBufferOverflow, err)

	// zero type
	_, _, err = enc.ParseBlock([]byte{0x00, 0x00})
	require.IsType(t, enc.ErrFormat{}, err)
}

func TestBlockFromBytes(t *testing.T) {
	tu.SetT(t)

	b := tu.NoErr(enc.BlockFromBytes([]byte{0xfd, 0x03, 0x4c, 0x00}))
	require.Equal(t, enc.TLNum(0x034c), b.Typ)
	require.Equal(t, "FD034C00", b.String())

	_, err := enc.BlockFromBytes([]byte{0x50, 0x01, 0x01, 0x00})
	require.Equal(t, enc.ErrTrailingBytes, err)

	b = tu.NoErr(enc.BlockFromHex("64 04\n fd034c 00"))
	require.Equal(t, enc.TLNum(0x64), b.Typ)
	require.Equal(t, "6404FD034C00", b.String())

	_, err = enc.BlockFromHex("6Z00")
	require.IsType(t, enc.ErrFormat{}, err)
}

func TestBlockNonMinimalLength(t *testing.T) {
	tu.SetT(t)

	wire := []byte{0x50, 0xfd, 0x00, 0x02, 0xaa, 0xbb}
	b := tu.NoErr(enc.BlockFromBytes(wire))
	require.Equal(t, []byte{0xaa, 0xbb}, []byte(b.Val))
	require.Equal(t, len(wire), b.Size())

	buf := make([]byte, b.Size())
	require.Equal(t, len(wire), b.EncodeInto(buf))
	require.Equal(t, wire, buf)

	outer := enc.NewNestedBlock(0x64, enc.NewNatBlock(0x52, 1), b)
	require.Equal(t, []byte{0x64, 0x09, 0x52, 0x01, 0x01, 0x50, 0xfd, 0x00, 0x02, 0xaa, 0xbb}, outer.Bytes())

	e := enc.NewEncoder(16)
	require.Equal(t, len(wire), e.PrependBlock(b))
	require.Equal(t, wire, e.Bytes())

	// a constructed block is encoded minimally
	require.Equal(t, 4, enc.NewBlock(0x50, []byte{0xaa, 0xbb}).Size())
}

func TestBlockElements(t *testing.T) {
	tu.SetT(t)

	b := tu.NoErr(enc.BlockFromHex("1F08 1E0101 0703080141"))
	elems := tu.NoErr(b.Elements())
	require.Equal(t, 2, len(elems))
	require.Equal(t, enc.TLNum(0x1e), elems[0].Typ)
	require.Equal(t, uint64(1), tu.NoErr(elems[0].Nat()))
	require.Equal(t, enc.TLNum(0x07), elems[1].Typ)
	require.Equal(t, "/A", tu.NoErr(enc.NameFromBlock(elems[1])).String())

	_, err := enc.NewBlock(0x1f, []byte{0x1e, 0x05, 0x01}).Elements()
	require.Equal(t, enc.ErrBufferOverflow, err)

	_, err = enc.NewBlock(0x1e, []byte{0x01, 0x02, 0x03}).Nat()
	require.IsType(t, enc.ErrFormat{}, err)

	_, err = enc.NameFromBlock(elems[0])
	require.Equal(t, enc.ErrUnexpectedType{Expected: []enc.TLNum{enc.TypeName}, Actual: 0x1e}, err)
}

func TestBlockConstruct(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, "5300", enc.NewEmptyBlock(0x53).String())
	require.Equal(t, "5301FF", enc.NewNatBlock(0x53, 0xff).String())
	require.Equal(t, "53020100", enc.NewNatBlock(0x53, 0x100).String())
	require.Equal(t, "530400010000", enc.NewNatBlock(0x53, 0x10000).String())
	require.Equal(t, "53080000000100000000", enc.NewNatBlock(0x53, 0x100000000).String())

	nested := enc.NewNestedBlock(0x0320, enc.NewNatBlock(0x0321, 100))
	require.Equal(t, "FD032005FD03210164", nested.String())
	require.Equal(t, 9, nested.Size())

	require.True(t, nested.Equal(tu.NoErr(enc.BlockFromHex("FD032005FD03210164"))))
	require.False(t, nested.Equal(enc.NewNestedBlock(0x0320)))
}
