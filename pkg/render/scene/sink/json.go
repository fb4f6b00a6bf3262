package sink

import (
	"encoding/json"

	"github.com/matzehuels/sigil/pkg/render/scene"
)

// RenderJSON exports a scene node tree as a pretty-printed JSON document.
func RenderJSON(n scene.Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}
