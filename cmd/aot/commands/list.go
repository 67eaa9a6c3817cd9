package commands

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.trai.ch/aot/internal/core/domain"
	"go.trai.ch/aot/internal/ui/output"
	"go.trai.ch/aot/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <cache-dir>",
		Short: "List the contents of an optimization cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, err := c.app.List(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			if len(packages) == 0 {
				_, _ = out.WriteString(style.Muted.Render("optimization cache is empty") + "\n")
				return nil
			}

			heading := fmt.Sprintf("%d cached package version(s) in %s", len(packages), args[0])
			_, _ = out.WriteString(style.Header.Render(heading) + "\n")
			renderInventory(out, packages)

			return nil
		},
	}
}

// renderInventory writes the cache inventory table.
func renderInventory(out io.Writer, packages []domain.CachedPackage) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Arch", "Package", "Version", "Assets", "Hash"})
	for _, pkg := range packages {
		hash := pkg.Hash
		if hash == "" {
			hash = style.Muted.Render("missing stamp")
		}
		t.AppendRow(table.Row{pkg.Arch, pkg.Name, pkg.Version, pkg.Assets, hash})
	}

	tableStyle := table.StyleLight
	tableStyle.Options.DrawBorder = false
	t.SetStyle(tableStyle)
	t.Render()
}
