// Package static embeds the admin chrome stylesheet and locale flags.
package static

import (
	"embed"
	"io/fs"
)

//go:embed assets/*.css
var assetsFS embed.FS

//go:embed flags/*.svg
var flagsFS embed.FS

// Assets returns the files served under /static/.
func Assets() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Flags returns the locale flag images, named <code>.svg.
func Flags() fs.FS {
	sub, err := fs.Sub(flagsFS, "flags")
	if err != nil {
		panic(err)
	}
	return sub
}
