// Package builtin embeds the default craft model and planet materials.
package builtin

import "embed"

// FS holds models/ and textures/.
//
//go:embed models textures
var FS embed.FS
