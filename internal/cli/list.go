package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sigil/pkg/symbol"
)

// listCommand creates the list command that tabulates a symbol directory.
func (c *CLI) listCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the symbols in a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd.Context(), dir)
			if err != nil {
				return err
			}
			if reg.Len() == 0 {
				printInfo("No symbols found")
				return nil
			}

			fmt.Println(renderTable(
				[]string{"Name", "Layers", "Elements", "Size", "Attachment points"},
				symbolRows(reg.All()),
			))
			printDetail("%d symbols", reg.Len())
			printNextStep("Inspect one", appName+" points <name>")
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	return cmd
}

func symbolRows(defs []*symbol.Definition) [][]string {
	rows := make([][]string, 0, len(defs))
	for _, d := range defs {
		rows = append(rows, []string{
			d.Name,
			strconv.Itoa(len(d.Layers)),
			strconv.Itoa(d.ElementCount()),
			formatFloat(d.BBox.Width) + "×" + formatFloat(d.BBox.Height),
			specSummary(d.Specs),
		})
	}
	return rows
}

// specSummary renders specs as "tail×2, tip×1", or "-" when absent.
func specSummary(specs symbol.Specs) string {
	if specs == nil {
		return "-"
	}
	types := specs.Types()
	if len(types) == 0 {
		return "none"
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = fmt.Sprintf("%s×%d", t, len(specs[t]))
	}
	return strings.Join(parts, ", ")
}
