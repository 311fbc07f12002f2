// Command netatype assigns forcefield atom types to the atoms of a species and
// describes atom environments as NETA text.
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
