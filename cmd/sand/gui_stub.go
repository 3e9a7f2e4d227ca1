//go:build !ebiten

package main

import (
	"errors"

	"sandfall/internal/app"
	"sandfall/internal/sims/sand"
)

var errNoGUI = errors.New("the gui command requires the ebiten build tag: rebuild with `go build -tags ebiten ./cmd/sand`")

func runGUI(*sand.World, *app.Config) error {
	return errNoGUI
}
