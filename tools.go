//go:build tools
// +build tools

package tools

// qtc regenerates internal/templates/*.qtpl.go.
import (
	_ "github.com/valyala/quicktemplate/qtc"
)
