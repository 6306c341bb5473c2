package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/thriftfind/internal/config"
	logpkg "github.com/kailas-cloud/thriftfind/internal/logger"
	"github.com/kailas-cloud/thriftfind/internal/seed"
	"github.com/kailas-cloud/thriftfind/internal/storage"
	"github.com/kailas-cloud/thriftfind/internal/version"
)

// deps are the seams the commands need; tests swap them for fakes.
type deps struct {
	openRepo  func(ctx context.Context) (storage.Repository, func(), error)
	newLogger func() (*zap.Logger, error)
}

func defaultDeps() deps {
	return deps{
		openRepo: func(ctx context.Context) (storage.Repository, func(), error) {
			cfg, err := config.Load(config.GetEnv())
			if err != nil {
				return nil, nil, fmt.Errorf("load config: %w", err)
			}
			s, err := storage.Open(ctx, &cfg)
			if err != nil {
				return nil, nil, err //nolint:wrapcheck // storage.Open already adds context
			}
			return s.Listings, s.Close, nil
		},
		newLogger: func() (*zap.Logger, error) {
			return logpkg.NewLogger(config.GetEnv())
		},
	}
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:          "seeder",
		Short:        "Load or clear thriftfind listings",
		Version:      version.Version,
		SilenceUsage: true,
	}
	root.AddCommand(newLoadCmd(d), newClearCmd(d))
	return root
}

func newLoadCmd(d deps) *cobra.Command {
	var batchSize int

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load listings from a JSON array file (- for stdin)",
		Long: `Load listings from a JSON array into the configured storage.

Listings without an id get a generated UUID, listings without a status are
active, and listings without created_at are stamped in file order, newest first.

Examples:
  seeder load testdata/listings.json
  cat listings.json | seeder load - --batch-size 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, closeIn, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeIn()

			return runLoad(cmd, d, in, batchSize)
		},
	}
	cmd.Flags().IntVarP(&batchSize, "batch-size", "b", seed.DefaultBatchSize, "Listings per write")
	return cmd
}

func runLoad(cmd *cobra.Command, d deps, in io.Reader, batchSize int) error {
	logger, err := d.newLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	repo, closeRepo, err := d.openRepo(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRepo()

	res, err := seed.NewLoader(repo, batchSize, logger).Load(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("load listings: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d listings (%d active) in %d batches\n",
		res.Loaded, res.Active, res.Batches)
	return nil
}

func newClearCmd(d deps) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear listings without --yes")
			}

			repo, closeRepo, err := d.openRepo(cmd.Context())
			if err != nil {
				return err
			}
			defer closeRepo()

			n, err := repo.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear listings: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d listings\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path) //nolint:gosec // operator-supplied fixture path
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
