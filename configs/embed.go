package configs

import (
	_ "embed"
)

//go:embed tools.yaml
var defaultCatalog []byte

// Default returns the embedded default tool catalog.
func Default() []byte {
	return defaultCatalog
}
