package cli

import (
	_ "embed"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed docs/usage.md
var usageDoc string

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "Show the full usage documentation",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return err
			}
			out, err := r.Render(usageDoc)
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}
}
