// Command tagctl generates listing tags from the command line and inspects
// the vocabulary the service uses.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failure(err.Error()))
		os.Exit(1)
	}
}
