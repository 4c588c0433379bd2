// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rectilinear/shapes"
	"github.com/katalvlaran/rectilinear/vertex"
)

// generator binds a shape name to its positional parameters.
type generator struct {
	params []string
	build  func(p []int64) ([]vertex.Vertex, error)
}

var generators = map[string]generator{
	"rectangle": {
		params: []string{"x0", "y0", "x1", "y1"},
		build:  func(p []int64) ([]vertex.Vertex, error) { return shapes.Rectangle(p[0], p[1], p[2], p[3]) },
	},
	"staircase": {
		params: []string{"steps", "run", "rise"},
		build:  func(p []int64) ([]vertex.Vertex, error) { return shapes.Staircase(int(p[0]), p[1], p[2]) },
	},
	"comb": {
		params: []string{"teeth", "width", "gap", "depth", "base"},
		build:  func(p []int64) ([]vertex.Vertex, error) { return shapes.Comb(int(p[0]), p[1], p[2], p[3], p[4]) },
	},
	"cross": {
		params: []string{"arm", "thickness"},
		build:  func(p []int64) ([]vertex.Vertex, error) { return shapes.Cross(p[0], p[1]) },
	},
	"random": {
		params: []string{"seed", "columns", "maxHeight"},
		build:  func(p []int64) ([]vertex.Vertex, error) { return shapes.Random(p[0], int(p[1]), int(p[2])) },
	},
}

func shapeUsage() string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	slices.Sort(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "  %-10s %s\n", name, strings.Join(generators[name].params, " "))
	}

	return b.String()
}

func (a *app) generateCommand() *cobra.Command {
	var (
		dx, dy    int64
		transpose bool
	)
	cmd := &cobra.Command{
		Use:   "generate <shape> [params...]",
		Short: "Print a generated orthogonal polygon",
		Long:  "generate prints a polygon in solve's input format.\n\nShapes and parameters:\n" + shapeUsage(),
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = a.runE(func(cmd *cobra.Command, args []string) error {
		loop, err := buildShape(args[0], args[1:])
		if err != nil {
			return err
		}
		if transpose {
			loop = shapes.Transpose(loop)
		}
		loop = shapes.Translate(loop, dx, dy)

		a.log.Debug().Str("shape", args[0]).Int("vertices", len(loop)).Msg("generated")

		w := cmd.OutOrStdout()
		for _, v := range loop {
			fmt.Fprintln(w, v)
		}

		return nil
	})

	cmd.Flags().Int64Var(&dx, "dx", 0, "shift every vertex right by dx")
	cmd.Flags().Int64Var(&dy, "dy", 0, "shift every vertex up by dy")
	cmd.Flags().BoolVar(&transpose, "transpose", false, "mirror across y = x before shifting")

	return cmd
}

func buildShape(name string, raw []string) ([]vertex.Vertex, error) {
	gen, ok := generators[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("generate: %q: %w", name, ErrUnknownShape)
	}
	if len(raw) != len(gen.params) {
		return nil, fmt.Errorf("generate %s: want %d parameters (%s), got %d: %w",
			name, len(gen.params), strings.Join(gen.params, " "), len(raw), ErrUsage)
	}

	params := make([]int64, len(raw))
	for i, s := range raw {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("generate %s: %s=%q: %w", name, gen.params[i], s, ErrUsage)
		}
		params[i] = n
	}

	return gen.build(params)
}
