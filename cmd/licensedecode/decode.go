package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"licensedecoder/internal/license/handler"
	"licensedecoder/internal/license/service"
	"licensedecoder/internal/platform/config"
	"licensedecoder/internal/platform/logger"
)

type decodeOptions struct {
	inspect      bool
	requireDates bool
}

func newDecodeCmd() *cobra.Command {
	opts := decodeOptions{requireDates: config.LicenseFromEnv().RequireDates}

	cmd := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Decode barcode text from FILE or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readBarcode(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return runDecode(cmd, raw, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.inspect, "inspect", false, "print the header and raw fields instead of the record")
	cmd.Flags().BoolVar(&opts.requireDates, "require-dates", opts.requireDates, "reject records without a date of birth or expiration date")
	return cmd
}

// readBarcode returns the file contents untouched; header offsets count from
// the first byte, so nothing is trimmed.
func readBarcode(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read barcode file: %w", err)
	}
	return string(b), nil
}

func runDecode(cmd *cobra.Command, raw string, opts decodeOptions) error {
	svc := service.New(
		service.WithLogger(logger.NewWithWriter(cmd.ErrOrStderr(), "error")),
		service.WithRequireDates(opts.requireDates),
	)
	ctx := cmd.Context()

	var out any
	if opts.inspect {
		in, err := svc.Inspect(ctx, raw)
		if err != nil {
			return err
		}
		out = handler.FromInspection(in)
	} else {
		lic, err := svc.Decode(ctx, raw)
		if err != nil {
			return err
		}
		out = lic.Record()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
