// Package templates holds the embedded HTML templates rendered by the
// server. Every page template is named after its file.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
