package main

import (
	"os"

	"github.com/pitchspark/pitchspark/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
