// Package main implements profilectl, the command line shell over the profile
// document store.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khoahotran/dynamic-profile/adapters/persistence"
	"github.com/khoahotran/dynamic-profile/internal/application/store"
	"github.com/khoahotran/dynamic-profile/internal/config"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

type rootOptions struct {
	configDir string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:           "profilectl",
		Short:         "Manage the stored dynamic profile",
		Long:          "profilectl exports, imports, validates and inspects the profile document held by the configured storage back end.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", ".", "Directory holding config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log storage activity")

	rootCmd.AddCommand(
		newExportCmd(opts),
		newImportCmd(opts),
		newShowCmd(opts),
		newOnboardCmd(opts),
		newValidateCmd(),
	)
	return rootCmd
}

// openStore loads the document from the configured storage. The returned
// func flushes pending writes and releases the storage.
func (o *rootOptions) openStore(ctx context.Context) (*store.Store, logger.Logger, func(), error) {
	cfg, err := config.LoadConfig(o.configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewNop()
	if o.verbose {
		log = logger.NewZapLogger("development")
	}

	storage, closeStorage, err := persistence.NewDocumentStorage(cfg, log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to open storage: %w", err)
	}
	s := store.New(ctx, storage, cfg.Storage.Key, log)
	return s, log, func() {
		s.Close()
		closeStorage()
	}, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
