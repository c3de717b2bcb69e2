package cli

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// newImportCmd builds the subcommand that imports question files into the
// catalog. Files load concurrently; the catalog serializes the appends.
func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.jsonl> [more files...]",
		Short: "Import question records from JSONL files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, logger, err := buildService()
			if err != nil {
				return err
			}
			defer logger.Sync()

			var total int64
			g, ctx := errgroup.WithContext(cmd.Context())
			for _, path := range args {
				if !strings.HasSuffix(path, ".jsonl") {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: not a .jsonl file\n", path)
					continue
				}
				path := path
				g.Go(func() error {
					f, err := os.Open(path)
					if err != nil {
						return err
					}
					defer f.Close()
					count, err := service.ImportQuestions(ctx, f)
					if err != nil {
						return fmt.Errorf("import %s: %w", path, err)
					}
					atomic.AddInt64(&total, int64(count))
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d questions\n", atomic.LoadInt64(&total))
			return nil
		},
	}
}
