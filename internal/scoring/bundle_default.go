package scoring

import (
	"bytes"
	_ "embed"
)

// The embedded bundle is a distilled linear export of the trained models,
// good enough for dev and demo environments where the real artifact store
// is not configured. Production deployments load the exported tree-ensemble
// bundle instead.
//
//go:embed default_bundle.json
var defaultBundleJSON []byte

// DefaultBundle loads the embedded fallback model bundle.
func DefaultBundle() (*Bundle, error) {
	return LoadBundle(bytes.NewReader(defaultBundleJSON))
}
