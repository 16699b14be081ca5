package cli

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-twmerge/pkg/twmerge"
)

func newHTMLCommand(a *app) *cobra.Command {
	var selector string

	cmd := &cobra.Command{
		Use:   "html",
		Short: "Merge the class attributes of an HTML document",
		Long: `Reads an HTML document from stdin, merges the class attribute of every element
matching --selector and writes the document to stdout.

The document is re-rendered by the HTML parser, so a fragment comes back wrapped in
html, head and body elements.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := goquery.NewDocumentFromReader(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "parse HTML")
			}

			changed := rewriteClasses(doc.Selection, selector, a.merger)
			a.logger.Debug("Rewrote class attributes", zap.Int("elements", changed))

			out, err := doc.Html()
			if err != nil {
				return errors.Wrap(err, "render HTML")
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&selector, "selector", "[class]", "CSS selector of the elements to rewrite")
	return cmd
}

// rewriteClasses merges the class attribute of every element below root matching selector
// and returns how many attributes changed.
func rewriteClasses(root *goquery.Selection, selector string, m *twmerge.Merger) int {
	changed := 0
	root.Find(selector).Each(func(_ int, s *goquery.Selection) {
		class, ok := s.Attr("class")
		if !ok {
			return
		}
		if merged := m.Merge(class); merged != class {
			s.SetAttr("class", merged)
			changed++
		}
	})
	return changed
}
