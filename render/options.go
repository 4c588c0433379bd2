// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Options controls canvas size and colours.
type Options struct {
	Width, Height int
	Padding       float64
	LineWidth     float64
	FlipY         bool

	Background       color.Color
	Fill             color.Color
	Outline          color.Color
	Highlight        color.Color
	HighlightOutline color.Color
}

// DefaultOptions returns an 800×800 canvas with 20px padding.
func DefaultOptions() Options {
	return Options{
		Width:            800,
		Height:           800,
		Padding:          20,
		LineWidth:        2,
		Background:       colornames.White,
		Fill:             colornames.Lightsteelblue,
		Outline:          colornames.Steelblue,
		Highlight:        colornames.Gold,
		HighlightOutline: colornames.Crimson,
	}
}
