package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	transferUC "github.com/khoahotran/dynamic-profile/internal/application/usecase/transfer"
	"github.com/khoahotran/dynamic-profile/internal/domain/profile"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the profile as indented JSON",
		Long:  "Writes the stored profile to --out (default " + profile.ExportFileName + "). Use --out - for stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, log, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			output, err := transferUC.NewTransferUseCase(s, log).ExecuteExport(cmd.Context(), w)
			if err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bytes to %s\n", output.Size, out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", profile.ExportFileName, "Path to the output JSON file")
	return cmd
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the profile with a previously exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open import file: %w", err)
			}
			defer f.Close()

			s, log, closeStore, err := opts.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore()

			output, err := transferUC.NewTransferUseCase(s, log).ExecuteImport(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.Message)
			return nil
		},
	}
}
