// Command ppp2hex converts the PPP session captured in putty.log into a hex
// dump in pppdump.txt, one frame per line.
package main

import (
	"os"

	"github.com/mitchellh/cli"
)

func main() {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	os.Exit(newCommand(ui).Run(os.Args[1:]))
}
