// embed.go declares the embedded data files. It has to live in the
// repository root next to data/ because go:embed cannot reach parent
// directories.
package main

import "embed"

//go:embed data/invaders.yaml
var dataFS embed.FS
