// Package scenario provides embedded obstacle layouts and the cell colour palette.
package scenario

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
