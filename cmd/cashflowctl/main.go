// Command cashflowctl drives the record form helpers against a running
// cash-flow catalog server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
