// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rectilinear/compress"
	"github.com/katalvlaran/rectilinear/polygon"
)

func (a *app) inspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarise the compressed grid of a polygon",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = a.runE(a.inspect)

	return cmd
}

func (a *app) inspect(cmd *cobra.Command, args []string) error {
	vs, err := a.readVertices(cmd, args, a.cfg.Policy())
	if err != nil {
		return err
	}
	p, err := polygon.New(vs)
	if err != nil {
		return err
	}
	g, err := compress.NewGrid(p)
	if err != nil {
		return err
	}
	lo, hi := p.Bounds()

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-10s%d\n", "vertices", p.Len())
	fmt.Fprintf(w, "%-10s%dx%d\n", "grid", g.Cols(), g.Rows())
	fmt.Fprintf(w, "%-10s%d\n", "interior", g.InteriorCells())
	fmt.Fprintf(w, "%-10s%s\n", "area", g.InteriorArea())
	fmt.Fprintf(w, "%-10s%d\n", "regions", len(g.Regions()))
	fmt.Fprintf(w, "%-10s%s %s\n", "bounds", lo, hi)

	return nil
}
