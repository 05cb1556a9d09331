package main

import (
	"os"

	"github.com/PolarWolf314/caesar/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
