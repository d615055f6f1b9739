// Package embedded carries the default lens catalog compiled into the
// binary.
package embedded

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.yaml
var files embed.FS

// FS returns the embedded catalog rooted at its YAML documents.
func FS() fs.FS {
	sub, err := fs.Sub(files, "catalog")
	if err != nil {
		panic(err)
	}
	return sub
}
