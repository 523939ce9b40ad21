package lp_test

import (
	"testing"

	"github.com/named-data/ndnlp/std/lp"
	tu "github.com/named-data/ndnlp/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestNackReason(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, "None", lp.NackReasonNone.String())
	require.Equal(t, "Congestion", lp.NackReasonCongestion.String())
	require.Equal(t, "Duplicate", lp.NackReasonDuplicate.String())
	require.Equal(t, "NoRoute", lp.NackReasonNoRoute.String())
	require.Equal(t, "7", lp.NackReason(7).String())

	require.Equal(t, lp.NackReasonNoRoute, tu.NoErr(lp.NackReasonFromString("NoRoute")))
	require.Equal(t, lp.NackReason(7), tu.NoErr(lp.NackReasonFromString("7")))
	tu.Err(lp.NackReasonFromString("Unreachable"))

	require.True(t, lp.NackReasonCongestion.Less(lp.NackReasonDuplicate))
	require.True(t, lp.NackReasonDuplicate.Less(lp.NackReasonNoRoute))
	require.True(t, lp.NackReasonNoRoute.Less(lp.NackReasonNone))
	require.True(t, lp.NackReasonNoRoute.Less(lp.NackReason(7)))
	require.False(t, lp.NackReasonNone.Less(lp.NackReasonCongestion))
}

func TestNackHeaderDecode(t *testing.T) {
	tu.SetT(t)

	// unknown sub-elements around the reason are skipped
	p := tu.NoErr(lp.DecodePacket(fromHex("640d fd032009 fd03ff00 fd03210132")))
	h := tu.NoErr(lp.Get(p, lp.Nack, 0))
	require.Equal(t, lp.NackReasonCongestion, h.Reason)
	require.Equal(t, "Nack(Congestion)", h.String())

	p = tu.NoErr(lp.DecodePacket(fromHex("640a fd032006 fd0321030000")))
	tu.Err(lp.Get(p, lp.Nack, 0))
}

func TestCachePolicyType(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, "NoCache", lp.CachePolicyNoCache.String())
	require.Equal(t, "3", lp.CachePolicyType(3).String())
	require.Equal(t, lp.CachePolicyNoCache, tu.NoErr(lp.CachePolicyTypeFromString("NoCache")))
	require.Equal(t, lp.CachePolicyType(3), tu.NoErr(lp.CachePolicyTypeFromString("3")))
	tu.Err(lp.CachePolicyTypeFromString("Cache"))

	p := &lp.Packet{}
	require.NoError(t, lp.Set(p, lp.CachePolicy, lp.CachePolicyHeader{Type: lp.CachePolicyNoCache}))
	require.Equal(t, fromHex("6409 fd033405 fd03350101"), p.Encode())
}
