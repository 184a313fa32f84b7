// Command licensedecode decodes AAMVA license barcode text from a file or
// stdin and mints access tokens for the decode API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
