package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "licensedecode",
		Short: "Decode AAMVA driver's license barcode text",
		Long: `licensedecode reads the text a PDF417 scanner produces from the back of a
North American driver's license and prints the normalized record as JSON.

Examples:
  licensedecode decode scan.txt          Decode a barcode stored in a file
  scanner-tool | licensedecode decode    Decode a barcode read from stdin
  licensedecode decode --inspect scan.txt
  licensedecode token --client-id kiosk-1 --ttl 24h`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newTokenCmd())
	return root
}
