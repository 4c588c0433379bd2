// SPDX-License-Identifier: MIT

package cli

import "errors"

var (
	// ErrUsage reports bad arguments or flag values.
	ErrUsage = errors.New("cli: invalid arguments")

	// ErrUnknownShape reports a generate shape name that is not registered.
	ErrUnknownShape = errors.New("cli: unknown shape")
)
