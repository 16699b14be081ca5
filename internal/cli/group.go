package cli

import (
	"bufio"

	"github.com/spf13/cobra"
)

func newGroupCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "group class...",
		Short: "Print the class group of each class",
		Long: `Group prints one line per class with the class group it belongs to, or "-" for
classes that are not recognised utilities and are always kept by merge.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, class := range args {
				id, ok := a.merger.ClassGroup(class)
				if !ok {
					id = "-"
				}
				w.WriteString(class)
				w.WriteByte('\t')
				w.WriteString(id)
				w.WriteByte('\n')
			}
			return w.Flush()
		},
	}
}
