// Package views embeds the dashboard templates.
package views

import "embed"

// FS holds every template, addressed by path without the .html extension.
//
//go:embed *.html layouts/*.html partials/*.html
var FS embed.FS
