package main

import (
	"fmt"
	"strings"

	"github.com/dcreager/ppphex-go/internal/logging"
	"github.com/dcreager/ppphex-go/ppphex"
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

const (
	inputFile  = "putty.log"
	outputFile = "pppdump.txt"
)

// command is a cli.Command that runs the whole conversion.  The file names are
// fixed; the fields exist so tests can point them somewhere else.
type command struct {
	UI     cli.Ui
	Logger hclog.Logger

	inputPath  string
	outputPath string
}

func newCommand(ui cli.Ui) *command {
	return &command{
		UI:         ui,
		Logger:     logging.New(&cli.UiWriter{Ui: ui}),
		inputPath:  inputFile,
		outputPath: outputFile,
	}
}

func (c *command) Help() string {
	return strings.TrimSpace(`
Usage: ppp2hex

  Reads ` + inputFile + ` from the current directory, skips everything up to and
  including the first line containing "CONNECT", and writes a hex dump of the
  remaining PPP data to ` + outputFile + `. Every flag byte that opens a frame
  starts a new line beginning with 000000.

  Progress is written to standard output. Set PPP2HEX_LOG_LEVEL to change
  verbosity.
`)
}

func (c *command) Synopsis() string {
	return "Dumps the PPP data in a terminal capture as hex"
}

func (c *command) Run(args []string) int {
	if len(args) > 0 {
		c.UI.Error(fmt.Sprintf("Error found unexpected args: %v", args))
		c.UI.Output(c.Help())
		return 1
	}

	if _, err := ppphex.ConvertFile(c.inputPath, c.outputPath, c.Logger); err != nil {
		c.UI.Error(fmt.Sprintf("Error: %s", err))
		return 1
	}
	return 0
}
