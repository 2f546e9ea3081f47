package main

import (
	"os"

	"github.com/edukit/go-canvas/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
