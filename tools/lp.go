package tools

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	enc "github.com/named-data/ndnlp/std/encoding"
	"github.com/named-data/ndnlp/std/log"
	"github.com/named-data/ndnlp/std/lp"
	"github.com/named-data/ndnlp/std/utils/toolutils"
	"github.com/spf13/cobra"
)

// PacketDesc is the YAML description of an LpPacket accepted by `lp encode`.
// Binary values are hexadecimal strings; absent keys leave the field out.
type PacketDesc struct {
	Sequence           *uint64  `json:"sequence"`
	FragIndex          *uint64  `json:"frag_index"`
	FragCount          *uint64  `json:"frag_count"`
	PitToken           string   `json:"pit_token"`
	Nack               *string  `json:"nack"`
	IncomingFaceId     *uint64  `json:"incoming_face_id"`
	NextHopFaceId      *uint64  `json:"next_hop_face_id"`
	CachePolicy        string   `json:"cache_policy"`
	CongestionMark     *uint64  `json:"congestion_mark"`
	Ack                []uint64 `json:"ack"`
	TxSequence         *uint64  `json:"tx_sequence"`
	NonDiscovery       bool     `json:"non_discovery"`
	PrefixAnnouncement string   `json:"prefix_announcement"`
	Fragment           string   `json:"fragment"`
}

func setIfPresent[V any](p *lp.Packet, f *lp.Field[V], v *V) error {
	if v == nil {
		return nil
	}
	return lp.Set(p, f, *v)
}

func decodeHex(key string, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.Join(strings.Fields(s), ""))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// Packet builds the described packet.
func (d *PacketDesc) Packet() (*lp.Packet, error) {
	p := &lp.Packet{}

	err := errors.Join(
		setIfPresent(p, lp.Sequence, d.Sequence),
		setIfPresent(p, lp.FragIndex, d.FragIndex),
		setIfPresent(p, lp.FragCount, d.FragCount),
		setIfPresent(p, lp.IncomingFaceId, d.IncomingFaceId),
		setIfPresent(p, lp.NextHopFaceId, d.NextHopFaceId),
		setIfPresent(p, lp.CongestionMark, d.CongestionMark),
		setIfPresent(p, lp.TxSequence, d.TxSequence),
	)
	if err != nil {
		return nil, err
	}

	if d.PitToken != "" {
		token, err := decodeHex("pit_token", d.PitToken)
		if err != nil {
			return nil, err
		}
		if err = lp.Set(p, lp.PitToken, token); err != nil {
			return nil, err
		}
	}

	if d.Nack != nil {
		reason, err := lp.NackReasonFromString(*d.Nack)
		if err != nil {
			return nil, err
		}
		if err = lp.Set(p, lp.Nack, lp.NackHeader{Reason: reason}); err != nil {
			return nil, err
		}
	}

	if d.CachePolicy != "" {
		typ, err := lp.CachePolicyTypeFromString(d.CachePolicy)
		if err != nil {
			return nil, err
		}
		if err = lp.Set(p, lp.CachePolicy, lp.CachePolicyHeader{Type: typ}); err != nil {
			return nil, err
		}
	}

	for _, ack := range d.Ack {
		if err := lp.Add(p, lp.Ack, ack); err != nil {
			return nil, err
		}
	}

	if d.NonDiscovery {
		if err := lp.Set(p, lp.NonDiscovery, lp.EmptyValue{}); err != nil {
			return nil, err
		}
	}

	if d.PrefixAnnouncement != "" {
		pa, err := enc.BlockFromHex(d.PrefixAnnouncement)
		if err != nil {
			return nil, fmt.Errorf("invalid prefix_announcement: %w", err)
		}
		if err = lp.Set(p, lp.PrefixAnnouncement, pa); err != nil {
			return nil, err
		}
	}

	if d.Fragment != "" {
		frag, err := decodeHex("fragment", d.Fragment)
		if err != nil {
			return nil, err
		}
		if err = lp.Set(p, lp.Fragment, frag); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// fieldValue decodes a field element into a printable value.
type fieldValue func(enc.Block) (any, error)

func valueOf[V any](f *lp.Field[V]) fieldValue {
	return func(b enc.Block) (any, error) {
		v, err := f.Decode(b)
		return v, err
	}
}

var fieldValues = map[enc.TLNum]fieldValue{
	lp.TypeSequence:           valueOf(lp.Sequence),
	lp.TypeFragIndex:          valueOf(lp.FragIndex),
	lp.TypeFragCount:          valueOf(lp.FragCount),
	lp.TypePitToken:           valueOf(lp.PitToken),
	lp.TypeNack:               valueOf(lp.Nack),
	lp.TypeIncomingFaceId:     valueOf(lp.IncomingFaceId),
	lp.TypeNextHopFaceId:      valueOf(lp.NextHopFaceId),
	lp.TypeCachePolicy:        valueOf(lp.CachePolicy),
	lp.TypeCongestionMark:     valueOf(lp.CongestionMark),
	lp.TypeAck:                valueOf(lp.Ack),
	lp.TypeTxSequence:         valueOf(lp.TxSequence),
	lp.TypeNonDiscovery:       valueOf(lp.NonDiscovery),
	lp.TypePrefixAnnouncement: valueOf(lp.PrefixAnnouncement),
	lp.TypeFragment:           valueOf(lp.Fragment),
}

func formatValue(v any) string {
	switch v := v.(type) {
	case []byte:
		return strings.ToUpper(hex.EncodeToString(v))
	case lp.CachePolicyHeader:
		return v.Type.String()
	case lp.EmptyValue:
		return "true"
	default:
		return fmt.Sprint(v)
	}
}

// PrintPacket writes one line per field in wire order.
// Unrecognized ignorable fields are listed with their raw value.
func PrintPacket(w io.Writer, p *lp.Packet) error {
	elems := p.Elements()

	padding := 0
	for _, e := range elems {
		padding = max(padding, len(lp.ResolveField(e.Typ).Name()))
	}

	fmt.Fprintln(w, p.String())
	out := toolutils.StatusPrinter{Out: w, Padding: padding + 2}
	for _, e := range elems {
		info := lp.ResolveField(e.Typ)
		decode, ok := fieldValues[e.Typ]
		if !ok {
			out.Print(info.Name(), "(ignored) "+strings.ToUpper(hex.EncodeToString(e.Val)))
			continue
		}
		v, err := decode(e)
		if err != nil {
			return err
		}
		out.Print(info.Name(), formatValue(v))
	}
	return nil
}

type LpTool struct{}

func (t *LpTool) String() string {
	return "lp"
}

// CmdLp is the `lp` command tree.
func CmdLp() *cobra.Command {
	t := LpTool{}

	cmd := &cobra.Command{
		GroupID: "codec",
		Use:     "lp",
		Short:   "Encode and decode NDNLPv2 frames",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "decode HEX",
		Short: "Decode an LpPacket and print its fields",
		Long: `Decode an LpPacket and print its fields in wire order.
A bare Interest or Data is shown as a packet with only a Fragment.`,
		Args:    cobra.ExactArgs(1),
		Example: `  ndnlp lp decode 640d510800000000000003e85001ff`,
		Run:     t.runDecode,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "encode FILE",
		Short: "Encode an LpPacket from a YAML description",
		Long: `Encode an LpPacket from a YAML description and print it in hexadecimal.

Recognized keys:
  sequence, frag_index, frag_count, pit_token, nack, incoming_face_id,
  next_hop_face_id, cache_policy, congestion_mark, ack, tx_sequence,
  non_discovery, prefix_announcement, fragment`,
		Args:    cobra.ExactArgs(1),
		Example: `  ndnlp lp encode frame.yml`,
		Run:     t.runEncode,
	})

	return cmd
}

func (t *LpTool) runDecode(_ *cobra.Command, args []string) {
	outer, err := enc.BlockFromHex(args[0])
	if err != nil {
		log.Fatal(t, "Invalid input", "err", err)
		return
	}

	p := &lp.Packet{}
	if err = p.DecodeBlock(outer); err != nil {
		log.Fatal(t, "Unable to decode packet", "err", err)
		return
	}

	if err = PrintPacket(os.Stdout, p); err != nil {
		log.Fatal(t, "Unable to decode field", "err", err)
	}
}

func (t *LpTool) runEncode(_ *cobra.Command, args []string) {
	desc := PacketDesc{}
	if err := toolutils.ReadYaml(&desc, args[0]); err != nil {
		log.Fatal(t, "Unable to read packet description", "err", err)
		return
	}

	p, err := desc.Packet()
	if err != nil {
		log.Fatal(t, "Invalid packet description", "err", err)
		return
	}
	if p.Empty() {
		log.Warn(t, "Packet description has no fields", "file", args[0])
	}

	fmt.Println(strings.ToUpper(hex.EncodeToString(p.Encode())))
}
