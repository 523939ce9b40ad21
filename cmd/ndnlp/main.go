package main

import (
	"os"

	"github.com/named-data/ndnlp/cmd"
)

func main() {
	if err := cmd.CmdNDNlp.Execute(); err != nil {
		os.Exit(1)
	}
}
