// SPDX-License-Identifier: MIT

// Command rectilinear finds the largest vertex-cornered rectangle inside an
// orthogonal polygon. See package cli for the command tree.
package main

import (
	"os"

	"github.com/katalvlaran/rectilinear/cli"
)

func main() {
	os.Exit(cli.Execute())
}
