package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/lumen/cmd"
)

func main() {
	if err := cmd.LoadEnv(os.Getenv("LUMEN_ENV_FILE")); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := cmd.NewApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
