package tools

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	enc "github.com/named-data/ndnlp/std/encoding"
	"github.com/named-data/ndnlp/std/log"
	"github.com/named-data/ndnlp/std/lp"
	"github.com/named-data/ndnlp/std/ndn"
	"github.com/named-data/ndnlp/std/object/storage"
	"github.com/spf13/cobra"
)

// Archive keeps encoded LP frames under NDN names.
type Archive struct {
	store storage.Store
}

func NewArchive(store storage.Store) *Archive {
	return &Archive{store: store}
}

func (a *Archive) String() string {
	return "archive"
}

// Put validates a frame and stores its canonical encoding.
func (a *Archive) Put(name enc.Name, wire []byte) (*lp.Packet, error) {
	if len(wire) > ndn.MaxNDNPacketSize {
		return nil, ndn.ErrInvalidValue{Item: "frame size", Value: len(wire)}
	}

	p, err := lp.DecodePacket(wire)
	if err != nil {
		return nil, err
	}

	if err = a.store.Put(name, p.Encode()); err != nil {
		return nil, err
	}
	log.Debug(a, "Archived frame", "name", name, "packet", p, "size", len(wire))
	return p, nil
}

// Get returns the frame stored under name, or the last one under it if prefix is set.
// A missing frame is returned as nil without an error.
func (a *Archive) Get(name enc.Name, prefix bool) (*lp.Packet, error) {
	wire, err := a.store.Get(name, prefix)
	if err != nil || wire == nil {
		return nil, err
	}
	return lp.DecodePacket(wire)
}

// Print lists the frames under prefix, one per line.
func (a *Archive) Print(w io.Writer, prefix enc.Name) error {
	names, err := a.store.List(prefix)
	if err != nil {
		return err
	}
	for _, name := range names {
		wire, err := a.store.Get(name, false)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %d\n", name, len(wire))
	}
	return nil
}

type ArchiveTool struct {
	prefix bool
	decode bool
}

func (t *ArchiveTool) String() string {
	return "archive"
}

// CmdArchive is the `archive` command tree.
func CmdArchive() *cobra.Command {
	t := ArchiveTool{}

	cmd := &cobra.Command{
		GroupID: "storage",
		Use:     "archive",
		Short:   "Store LP frames in a local database",
		Long: `Store LP frames in a local database, keyed by NDN name.
Frames are validated before they are stored.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "put DB-PATH NAME HEX",
		Short:   "Validate and store a frame",
		Args:    cobra.ExactArgs(3),
		Example: `  ndnlp archive put ./frames /face/256/seq=1 640d510800000000000003e85001ff`,
		Run:     t.runPut,
	})

	cmdGet := &cobra.Command{
		Use:     "get DB-PATH NAME",
		Short:   "Print a stored frame in hexadecimal",
		Args:    cobra.ExactArgs(2),
		Example: `  ndnlp archive get ./frames /face/256 --prefix --decode`,
		Run:     t.runGet,
	}
	cmdGet.Flags().BoolVar(&t.prefix, "prefix", false, "Get the last frame under the name prefix")
	cmdGet.Flags().BoolVar(&t.decode, "decode", false, "Print the decoded fields instead of hexadecimal")
	cmd.AddCommand(cmdGet)

	cmd.AddCommand(&cobra.Command{
		Use:     "list DB-PATH [PREFIX]",
		Short:   "List stored frames with their sizes",
		Args:    cobra.RangeArgs(1, 2),
		Example: `  ndnlp archive list ./frames /face/256`,
		Run:     t.runList,
	})

	return cmd
}

func (t *ArchiveTool) open(path string) *Archive {
	store, err := storage.NewBadgerStore(path)
	if err != nil {
		log.Fatal(t, "Unable to open database", "path", path, "err", err)
		return nil
	}
	return NewArchive(store)
}

func (t *ArchiveTool) parseName(s string) enc.Name {
	name, err := enc.NameFromStr(s)
	if err != nil {
		log.Fatal(t, "Invalid name", "name", s, "err", err)
		return nil
	}
	return name
}

func (t *ArchiveTool) runPut(_ *cobra.Command, args []string) {
	name := t.parseName(args[1])
	wire, err := hex.DecodeString(strings.Join(strings.Fields(args[2]), ""))
	if err != nil {
		log.Fatal(t, "Invalid frame", "err", err)
		return
	}

	a := t.open(args[0])
	defer a.store.Close()

	p, err := a.Put(name, wire)
	if err != nil {
		log.Error(t, "Unable to store frame", "name", name, "err", err)
		return
	}
	log.Info(t, "Stored frame", "name", name, "packet", p)
}

func (t *ArchiveTool) runGet(_ *cobra.Command, args []string) {
	name := t.parseName(args[1])

	a := t.open(args[0])
	defer a.store.Close()

	p, err := a.Get(name, t.prefix)
	if err != nil {
		log.Error(t, "Unable to read frame", "name", name, "err", err)
		return
	}
	if p == nil {
		log.Error(t, "Frame not found", "name", name)
		return
	}

	if t.decode {
		if err = PrintPacket(os.Stdout, p); err != nil {
			log.Error(t, "Unable to decode field", "err", err)
		}
		return
	}
	fmt.Println(strings.ToUpper(hex.EncodeToString(p.Encode())))
}

func (t *ArchiveTool) runList(_ *cobra.Command, args []string) {
	prefix := enc.Name{}
	if len(args) > 1 {
		prefix = t.parseName(args[1])
	}

	a := t.open(args[0])
	defer a.store.Close()

	if err := a.Print(os.Stdout, prefix); err != nil {
		log.Error(t, "Unable to list frames", "err", err)
	}
}
