// SPDX-License-Identifier: MIT

// Package cli implements the rectilinear command tree.
//
//	rectilinear solve [file]       largest interior rectangle area
//	rectilinear inspect [file]     grid and interior summary
//	rectilinear generate <shape>   emit a test polygon
//
// Input is one "x,y" vertex per line in loop order, read from file or from
// stdin when file is absent or "-". Settings come from package config and
// are overridden by flags. Every run logs under a fresh "run" UUID.
package cli
