// palletline is the command-line driver for the pallet line simulator; all
// flag parsing and subcommand dispatch happens in cmd.
package main

import (
	"github.com/palletline/palletline/cmd"
)

func main() {
	cmd.Execute()
}
