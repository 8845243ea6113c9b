package universe

import (
	_ "embed"
	"fmt"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Builtin returns a fresh universe holding the core declarations of
// java.lang, java.io and java.util: Object, the box classes, String,
// Enum and the common collection interfaces and classes.
func Builtin() *Universe {
	u, err := Parse(builtinYAML, "builtin.yaml")
	if err != nil {
		panic(fmt.Sprintf("universe.Builtin: %v", err))
	}
	return u
}
