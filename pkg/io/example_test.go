package io_test

import (
	"fmt"
	"strings"

	sigilio "github.com/matzehuels/sigil/pkg/io"
)

func ExampleReadYAML() {
	src := `
name: dot
bbox: {width: 2, height: 2}
layers:
  - tag: path
    props: {d: "M0 0 L2 2", fill: "sigil:fill"}
specs:
  anchor:
    - {x: 1, y: 1}
`
	def, err := sigilio.ReadYAML(strings.NewReader(src))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(def.Name, def.ElementCount(), len(def.Specs["anchor"]))
	// Output:
	// dot 1 1
}
