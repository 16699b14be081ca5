package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-twmerge/pkg/twmerge"
)

const maxLineSize = 1 << 20

func newMergeCommand(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "merge [classes...]",
		Short: "Merge class lists and print the result",
		Long: `Merge joins its arguments into one class list and prints the merged list.

Without arguments every line read from stdin is merged on its own and the results are
printed in input order.`,
		Example: `  twmerge merge "px-2 py-1 bg-red-500" "p-3 bg-blue-500"
  cat classes.txt | twmerge merge --jobs 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), a.merger.Merge(args...))
				return err
			}
			if jobs <= 0 {
				return errors.Errorf("--jobs must be positive, got %d", jobs)
			}
			n, err := mergeLines(cmd.Context(), a.merger, cmd.InOrStdin(), cmd.OutOrStdout(), jobs)
			if err != nil {
				return err
			}
			a.logger.Debug("Merged class lists from stdin", zap.Int("lines", n), zap.Int("jobs", jobs))
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "lines merged concurrently when reading stdin")
	return cmd
}

// mergeLines merges every line of r concurrently and writes the results to w in input order.
func mergeLines(ctx context.Context, m *twmerge.Merger, r io.Reader, w io.Writer, jobs int) (int, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return 0, errors.Wrap(err, "read stdin")
	}

	results := make([]string, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = m.Merge(line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	for _, res := range results {
		bw.WriteString(res)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return 0, errors.Wrap(err, "write results")
	}
	return len(lines), nil
}
