//go:build nowindow

package main

import (
	"errors"

	"github.com/gogpu/polydraw/internal/app"
	"github.com/gogpu/polydraw/internal/config"
)

func runWindow(*config.Config, string, ...app.Option) error {
	return errors.New("polydraw: built without window support, use -script")
}
