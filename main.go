package main

import (
	"os"

	"github.com/thenoetrevino/twodo/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
