package lp_test

import (
	"testing"

	enc "github.com/named-data/ndnlp/std/encoding"
	"github.com/named-data/ndnlp/std/lp"
	tu "github.com/named-data/ndnlp/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestResolveField(t *testing.T) {
	tu.SetT(t)

	info := lp.ResolveField(lp.TypeAck)
	require.True(t, info.Recognized)
	require.False(t, info.CanIgnore)
	require.True(t, info.Repeatable)
	require.Equal(t, lp.LocationHeader, info.SortOrder)
	require.Equal(t, "Ack", info.Name())

	info = lp.ResolveField(lp.TypeFragment)
	require.True(t, info.Recognized)
	require.False(t, info.Repeatable)
	require.Equal(t, lp.LocationFragment, info.SortOrder)

	info = lp.ResolveField(804)
	require.False(t, info.Recognized)
	require.True(t, info.CanIgnore)
	require.False(t, info.Repeatable)
	require.Equal(t, lp.LocationHeader, info.SortOrder)
	require.Equal(t, "804", info.Name())

	for _, typ := range []enc.TLNum{801, 802, 803, 799, 960, 0x55, 0x09} {
		info = lp.ResolveField(typ)
		require.False(t, info.Recognized, typ)
		require.False(t, info.CanIgnore, typ)
	}
}

func TestIsIgnorable(t *testing.T) {
	tu.SetT(t)

	require.True(t, lp.IsIgnorable(800))
	require.True(t, lp.IsIgnorable(956))
	require.True(t, lp.IsIgnorable(0x03bc))
	require.False(t, lp.IsIgnorable(0x03bf))
	require.False(t, lp.IsIgnorable(959))
	require.False(t, lp.IsIgnorable(960))
	require.False(t, lp.IsIgnorable(796))

	n := 0
	for typ := lp.Header3Min; typ <= lp.Header3Max; typ++ {
		if lp.IsIgnorable(typ) {
			n++
		}
	}
	require.Equal(t, 40, n)
}

func TestCompareFieldSortOrder(t *testing.T) {
	tu.SetT(t)

	seq := lp.ResolveField(lp.TypeSequence)
	ack := lp.ResolveField(lp.TypeAck)
	frag := lp.ResolveField(lp.TypeFragment)
	ignored := lp.ResolveField(804)

	require.Equal(t, -1, lp.CompareFieldSortOrder(seq, ack))
	require.Equal(t, 1, lp.CompareFieldSortOrder(ack, seq))
	require.Equal(t, 0, lp.CompareFieldSortOrder(ack, ack))

	// Fragment (0x50) has the smallest type but sorts after every header.
	require.Equal(t, -1, lp.CompareFieldSortOrder(seq, frag))
	require.Equal(t, -1, lp.CompareFieldSortOrder(ack, frag))
	require.Equal(t, -1, lp.CompareFieldSortOrder(ignored, frag))
	require.Equal(t, 1, lp.CompareFieldSortOrder(ignored, seq))
	require.Equal(t, -1, lp.CompareFieldSortOrder(ignored, ack))
}
