// Command protresolver groups proteins by their shared peptide evidence and
// reports which of them the evidence actually supports.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
