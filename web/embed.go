// Package web holds the landing page and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed views/index.html public
var content embed.FS

func IndexHTML() ([]byte, error) { return content.ReadFile("views/index.html") }

// Public is the public/ tree rooted at its own directory.
func Public() fs.FS {
	sub, err := fs.Sub(content, "public")
	if err != nil {
		panic(err)
	}
	return sub
}
