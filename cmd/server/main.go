package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/mireku/crimesift-api/internal/app"
)

// run is a variable so it can be overridden in tests.
var run = app.Run

// exitFunc is a variable wrapping os.Exit so it can be overridden in tests.
var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Error("startup failed", "err", err)
		exitFunc(1)
	}
}
