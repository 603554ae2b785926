// Command dec128 formats, converts, compares and serializes decimal128
// values from the command line.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := execute(newRootCommand(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
