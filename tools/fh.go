package tools

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	enc "github.com/named-data/ndnlp/std/encoding"
	"github.com/named-data/ndnlp/std/log"
	"github.com/named-data/ndnlp/std/ndn"
	"github.com/named-data/ndnlp/std/utils"
	"github.com/named-data/ndnlp/std/utils/toolutils"
	"github.com/spf13/cobra"
)

type DelegationDesc struct {
	Preference uint64 `json:"preference"`
	Name       string `json:"name"`
}

// DelegationListDesc is the YAML description of a DelegationList accepted by `fh encode`.
type DelegationListDesc struct {
	Delegations []DelegationDesc `json:"delegations"`
	// replace (default), append or skip
	OnConflict string `json:"on_conflict"`
}

func parseConflictResolution(s string) (ndn.InsertConflictResolution, error) {
	switch strings.ToLower(s) {
	case "", "replace":
		return ndn.InsertReplace, nil
	case "append":
		return ndn.InsertAppend, nil
	case "skip":
		return ndn.InsertSkip, nil
	default:
		return 0, ndn.ErrInvalidValue{Item: "on_conflict", Value: s}
	}
}

// DelegationList builds the described list, always sorted.
func (d *DelegationListDesc) DelegationList() (*ndn.DelegationList, error) {
	onConflict, err := parseConflictResolution(d.OnConflict)
	if err != nil {
		return nil, err
	}

	l := &ndn.DelegationList{}
	for _, del := range d.Delegations {
		name, err := enc.NameFromStr(del.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid delegation name %s: %w", del.Name, err)
		}
		if !l.Insert(del.Preference, name, onConflict) {
			log.Debug(nil, "Skipped duplicate delegation", "name", name, "preference", del.Preference)
		}
	}
	return l, nil
}

// PrintDelegationList writes the list header followed by one line per delegation.
func PrintDelegationList(w io.Writer, typ enc.TLNum, l *ndn.DelegationList) {
	out := toolutils.StatusPrinter{Out: w, Padding: 8}

	out.Print("type", utils.If(typ == ndn.TypeContent, "Content", "ForwardingHint"))
	out.Print("sorted", l.IsSorted())
	out.Print("count", l.Len())
	for i, d := range l.All() {
		out.Print(fmt.Sprintf("[%d]", i), d)
	}
}

type FhTool struct {
	unsorted bool
	content  bool
}

func (t *FhTool) String() string {
	return "fh"
}

// CmdFh is the `fh` command tree.
func CmdFh() *cobra.Command {
	t := FhTool{}

	cmd := &cobra.Command{
		GroupID: "codec",
		Use:     "fh",
		Short:   "Encode and decode ForwardingHint delegation lists",
	}

	cmdDecode := &cobra.Command{
		Use:   "decode HEX",
		Short: "Decode a ForwardingHint or Link Content element",
		Long: `Decode a ForwardingHint or Link Content element and print its delegations.
By default the delegations are sorted by preference, then by name.`,
		Args:    cobra.ExactArgs(1),
		Example: `  ndnlp fh decode 1e0d1f0b1e01010706080142080143`,
		Run:     t.runDecode,
	}
	cmdDecode.Flags().BoolVar(&t.unsorted, "unsorted", false, "Keep the wire order of delegations")
	cmd.AddCommand(cmdDecode)

	cmdEncode := &cobra.Command{
		Use:   "encode FILE",
		Short: "Encode a delegation list from a YAML description",
		Long: `Encode a delegation list from a YAML description and print it in hexadecimal.

Example description:
  delegations:
    - { preference: 10, name: /ndn/edu/ucla }
    - { preference: 20, name: /ndn/edu/arizona }
  on_conflict: replace`,
		Args:    cobra.ExactArgs(1),
		Example: `  ndnlp fh encode hint.yml`,
		Run:     t.runEncode,
	}
	cmdEncode.Flags().BoolVar(&t.content, "content", false, "Encode as Link Content instead of ForwardingHint")
	cmd.AddCommand(cmdEncode)

	return cmd
}

func (t *FhTool) runDecode(_ *cobra.Command, args []string) {
	b, err := enc.BlockFromHex(args[0])
	if err != nil {
		log.Fatal(t, "Invalid input", "err", err)
		return
	}

	l, err := ndn.DecodeDelegationList(b, !t.unsorted)
	if err != nil {
		log.Fatal(t, "Unable to decode delegation list", "err", err)
		return
	}

	PrintDelegationList(os.Stdout, b.Typ, l)
}

func (t *FhTool) runEncode(_ *cobra.Command, args []string) {
	desc := DelegationListDesc{}
	if err := toolutils.ReadYaml(&desc, args[0]); err != nil {
		log.Fatal(t, "Unable to read delegation list description", "err", err)
		return
	}

	l, err := desc.DelegationList()
	if err != nil {
		log.Fatal(t, "Invalid delegation list description", "err", err)
		return
	}

	typ := ndn.TypeForwardingHint
	if t.content {
		typ = ndn.TypeContent
	}
	wire, err := l.Encode(typ)
	if err != nil {
		log.Fatal(t, "Unable to encode delegation list", "err", err)
		return
	}

	fmt.Println(strings.ToUpper(hex.EncodeToString(wire)))
}
