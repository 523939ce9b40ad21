package cmd

import (
	"github.com/named-data/ndnlp/std/log"
	"github.com/named-data/ndnlp/std/utils"
	"github.com/named-data/ndnlp/tools"
	"github.com/spf13/cobra"
)

const banner = `
  _   _ ____  _   _ _     ____
 | \ | |  _ \| \ | | |   |  _ \
 |  \| | | | |  \| | |   | |_) |
 | |\  | |_| | |\  | |___|  __/
 |_| \_|____/|_| \_|_____|_|

NDN Link Protocol Toolkit
`

var logLevel string

var CmdNDNlp = &cobra.Command{
	Use:               "ndnlp",
	Short:             "NDN Link Protocol Toolkit",
	Long:              banner[1:],
	Version:           utils.NDNlpVersion,
	PersistentPreRunE: setLogLevel,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdNDNlp.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdNDNlp.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdNDNlp.PersistentFlags().Lookup("help").Hidden = true
	CmdNDNlp.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Logging level (TRACE, DEBUG, INFO, WARN, ERROR)")

	CmdNDNlp.AddGroup(&cobra.Group{ID: "codec", Title: "Codec Tools"})
	CmdNDNlp.AddCommand(tools.CmdLp())
	CmdNDNlp.AddCommand(tools.CmdFh())

	CmdNDNlp.AddGroup(&cobra.Group{ID: "storage", Title: "Storage Tools"})
	CmdNDNlp.AddCommand(tools.CmdArchive())
}

func setLogLevel(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.Default().SetLevel(level)
	return nil
}
