//go:build tools

package main

// Pins code generation tools so `go generate ./...` is reproducible.
import (
	_ "github.com/dmarkham/enumer"
)
