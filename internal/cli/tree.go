package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sigil/pkg/render/nodelink"
)

// treeCommand creates the tree command that draws a symbol's element tree
// as a node-link diagram using Graphviz.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		dir      string
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "tree <file|name>",
		Short: "Draw a symbol's element tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			def, err := loadSymbol(ctx, args[0], dir)
			if err != nil {
				return err
			}
			dot := nodelink.ToDOT(def, nodelink.Options{Detailed: detailed})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				logger.Info("Rendering element tree SVG")
				data, err = nodelink.RenderSVG(dot)
			case "png":
				logger.Info("Rendering element tree PNG")
				data, err = nodelink.RenderPNG(dot, 2.0)
			default:
				return fmt.Errorf("invalid format: %s (must be 'dot', 'svg' or 'png')", format)
			}
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()
			if _, err := out.Write(data); err != nil {
				return err
			}
			if output != "" {
				logger.Infof("Generated %s", output)
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show colors, widths and attachment points")

	return cmd
}
