package main

import (
	"os"

	"github.com/vipcxj/rangekit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
