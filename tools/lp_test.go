package tools_test

import (
	"strings"
	"testing"

	"github.com/named-data/ndnlp/std/lp"
	tu "github.com/named-data/ndnlp/std/utils/testutils"
	"github.com/named-data/ndnlp/std/utils/toolutils"
	"github.com/named-data/ndnlp/tools"
	"github.com/stretchr/testify/require"
)

func parsePacketDesc(t *testing.T, text string) *lp.Packet {
	desc := tools.PacketDesc{}
	require.NoError(t, toolutils.DecodeYaml(&desc, strings.NewReader(text)))
	return tu.NoErr(desc.Packet())
}

func TestPacketDescEncode(t *testing.T) {
	tu.SetT(t)

	p := parsePacketDesc(t, "sequence: 1000\nfragment: ff\n")
	require.Equal(t, fromHex("640d 5108 00000000000003e8 5001ff"), p.Encode())

	p = parsePacketDesc(t, "fragment: '0505 0703080141'\n")
	require.Equal(t, fromHex("0505 0703080141"), p.Encode())

	p = tu.NoErr((&tools.PacketDesc{}).Packet())
	require.True(t, p.Empty())
	require.Equal(t, fromHex("6400"), p.Encode())
}

func TestPacketDescFields(t *testing.T) {
	tu.SetT(t)

	p := parsePacketDesc(t, `
pit_token: a1b2
nack: Congestion
incoming_face_id: 256
cache_policy: NoCache
congestion_mark: 1
ack: [7, 3]
tx_sequence: 9
non_discovery: true
`)
	require.Equal(t, []byte{0xa1, 0xb2}, tu.NoErr(lp.Get(p, lp.PitToken, 0)))
	require.Equal(t, lp.NackReasonCongestion, tu.NoErr(lp.Get(p, lp.Nack, 0)).Reason)
	require.Equal(t, uint64(256), tu.NoErr(lp.Get(p, lp.IncomingFaceId, 0)))
	require.Equal(t, lp.CachePolicyNoCache, tu.NoErr(lp.Get(p, lp.CachePolicy, 0)).Type)
	require.Equal(t, uint64(1), tu.NoErr(lp.Get(p, lp.CongestionMark, 0)))
	require.Equal(t, []uint64{7, 3}, tu.NoErr(lp.List(p, lp.Ack)))
	require.Equal(t, uint64(9), tu.NoErr(lp.Get(p, lp.TxSequence, 0)))
	require.True(t, lp.Has(p, lp.NonDiscovery))
	require.False(t, lp.Has(p, lp.Sequence))
	require.False(t, lp.Has(p, lp.Fragment))

	// the encoding decodes back to the same fields
	q := tu.NoErr(lp.DecodePacket(p.Encode()))
	require.Equal(t, p.String(), q.String())
	require.Equal(t, []uint64{7, 3}, tu.NoErr(lp.List(q, lp.Ack)))
}

func TestPacketDescInvalid(t *testing.T) {
	tu.SetT(t)

	for _, text := range []string{
		"nack: Bogus\n",
		"pit_token: zz\n",
		"pit_token: '" + strings.Repeat("00", 33) + "'\n",
		"cache_policy: '3'\n",
		"prefix_announcement: '0500'\n",
		"fragment: abc\n",
	} {
		desc := tools.PacketDesc{}
		require.NoError(t, toolutils.DecodeYaml(&desc, strings.NewReader(text)), text)
		_, err := desc.Packet()
		require.Error(t, err, text)
	}

	desc := tools.PacketDesc{}
	require.Error(t, toolutils.DecodeYaml(&desc, strings.NewReader("sequence: 1\nseq: 2\n")))
}

func TestPrintPacket(t *testing.T) {
	tu.SetT(t)

	sb := strings.Builder{}
	p := tu.NoErr(lp.DecodePacket(fromHex("640d 5108 00000000000003e8 5001ff")))
	require.NoError(t, tools.PrintPacket(&sb, p))
	require.Equal(t, "LpPacket(Sequence,Fragment)\n  Sequence=1000\n  Fragment=FF\n", sb.String())

	sb.Reset()
	p = &lp.Packet{}
	require.NoError(t, lp.Set(p, lp.Nack, lp.NackHeader{Reason: lp.NackReasonCongestion}))
	require.NoError(t, tools.PrintPacket(&sb, p))
	require.Equal(t, "LpPacket(Nack)\n  Nack=Nack(Congestion)\n", sb.String())

	sb.Reset()
	p = tu.NoErr(lp.DecodePacket(fromHex("640e 5108 00000000000003e8 fd032400")))
	require.NoError(t, tools.PrintPacket(&sb, p))
	require.Equal(t, "LpPacket(Sequence,804)\n  Sequence=1000\n       804=(ignored) \n", sb.String())

	// value errors surface when printing
	sb.Reset()
	p = tu.NoErr(lp.DecodePacket(fromHex("6404 5102 0001")))
	require.Error(t, tools.PrintPacket(&sb, p))
}
