// Package assets embeds game data files at build time.
package assets

import "embed"

// Worlds holds the overworld layout definitions.
//
//go:embed worlds/*.json
var Worlds embed.FS
