package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sigil/pkg/symbol"
)

type pointsOpts struct {
	dir    string
	strict bool
	json   bool
}

// pointsCommand creates the points command for inspecting attachment points.
func (c *CLI) pointsCommand() *cobra.Command {
	var po pointsOpts

	cmd := &cobra.Command{
		Use:   "points <file|name> [type] [index]",
		Short: "Show a symbol's attachment points",
		Long: `Show a symbol's attachment points.

With no type, every declared point is listed. With a type, only points of
that type are listed. With a type and an index, that single point is looked
up; a missing point prints a warning, or fails with --strict.`,
		Example: `  sigil points arrow
  sigil points arrow tail
  sigil points arrow tip 0 --strict`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := loadSymbol(cmd.Context(), args[0], po.dir)
			if err != nil {
				return err
			}
			switch len(args) {
			case 1:
				return runPointsAll(def, &po)
			case 2:
				return runPointsType(def, symbol.AttachmentPointType(args[1]), &po)
			default:
				idx, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("invalid index %q: must be an integer", args[2])
				}
				return runPoint(cmd.Context(), def, symbol.AttachmentPointType(args[1]), idx, &po)
			}
		},
	}

	addDirFlag(cmd, &po.dir)
	cmd.Flags().BoolVar(&po.strict, "strict", false, "fail when the point does not exist")
	cmd.Flags().BoolVar(&po.json, "json", false, "print JSON")

	return cmd
}

func runPointsAll(def *symbol.Definition, po *pointsOpts) error {
	if po.json {
		return printJSON(def.Specs)
	}
	if !def.HasSpecs() {
		printWarning("Symbol %s has no specs.", def.Name)
		return nil
	}

	var rows [][]string
	for _, t := range def.Specs.Types() {
		for i, p := range def.Specs[t] {
			rows = append(rows, pointRow(string(t), i, p))
		}
	}
	fmt.Println(StyleTitle.Render(def.Name))
	fmt.Println(renderTable([]string{"Type", "#", "X", "Y", "Normal"}, rows))
	return nil
}

func runPointsType(def *symbol.Definition, t symbol.AttachmentPointType, po *pointsOpts) error {
	points := symbol.AttachmentPoints(def, t)
	if po.json {
		if points == nil {
			points = []symbol.PointWithNormal{}
		}
		return printJSON(points)
	}
	if len(points) == 0 {
		printWarning("Symbol %s has no %s attachment points.", def.Name, t)
		return nil
	}

	rows := make([][]string, 0, len(points))
	for i, p := range points {
		rows = append(rows, pointRow(string(t), i, p))
	}
	fmt.Println(renderTable([]string{"Type", "#", "X", "Y", "Normal"}, rows))
	return nil
}

func runPoint(ctx context.Context, def *symbol.Definition, t symbol.AttachmentPointType, idx int, po *pointsOpts) error {
	if po.strict {
		p, err := symbol.GetAttachmentPoint(def, t, idx)
		if err != nil {
			return err
		}
		return printPoint(p, po)
	}

	symbol.SetDiagnosticLogger(loggerFromContext(ctx))
	defer symbol.SetDiagnosticLogger(nil)

	p, err := symbol.SafeGetAttachmentPoint(def, t, idx)
	if err != nil {
		return err
	}
	if p == nil {
		if po.json {
			return printJSON(nil)
		}
		printWarning("No %s attachment point #%d on %s", t, idx, def.Name)
		return nil
	}
	return printPoint(*p, po)
}

func printPoint(p symbol.PointWithNormal, po *pointsOpts) error {
	if po.json {
		return printJSON(p)
	}
	nx, ny := p.Normal()
	printKeyValue("x", formatFloat(p.X))
	printKeyValue("y", formatFloat(p.Y))
	printKeyValue("normal", formatAngle(p.NormalAngle))
	printKeyValue("direction", fmt.Sprintf("(%s, %s)", formatFloat(nx), formatFloat(ny)))
	return nil
}

func pointRow(t string, i int, p symbol.PointWithNormal) []string {
	return []string{t, strconv.Itoa(i), formatFloat(p.X), formatFloat(p.Y), formatAngle(p.NormalAngle)}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

// formatAngle shows a radian angle with its value in degrees.
func formatAngle(rad float64) string {
	return fmt.Sprintf("%s rad (%s°)", formatFloat(rad), formatFloat(rad*180/math.Pi))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
