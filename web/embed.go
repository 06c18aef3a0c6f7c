// Package web embeds the browser client served at the root of the API origin.
package web

import "embed"

//go:embed index.html js css
var Assets embed.FS
