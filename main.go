package main

import (
	"os"

	"github.com/thenoetrevino/tasques/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
