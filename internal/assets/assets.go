// Package assets holds the resources compiled into the binary.
package assets

import _ "embed"

// Texture is the PNG applied to the pyramid.
//
//go:embed roon.png
var Texture []byte

// Icon is the PNG used as the window icon.
//
//go:embed roon_icon.png
var Icon []byte
