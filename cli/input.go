// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rectilinear/vertex"
)

const stdinName = "-"

// readVertices parses the loop from args[0] or stdin.
func (a *app) readVertices(cmd *cobra.Command, args []string, policy vertex.Policy) ([]vertex.Vertex, error) {
	src := "stdin"
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != stdinName {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, src = f, args[0]
	}

	res, err := vertex.Read(r, policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}

	if n := len(res.Skipped); n > 0 {
		a.log.Warn().Str("source", src).Int("skipped", n).Msg("malformed records skipped")
		for _, le := range res.Skipped {
			a.log.Debug().Int("line", le.Line).Str("text", le.Text).Err(le.Err).Msg("skipped record")
		}
	}
	a.log.Debug().Str("source", src).Stringer("policy", policy).Int("vertices", len(res.Vertices)).Msg("parsed")

	return res.Vertices, nil
}
