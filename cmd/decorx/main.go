package main

import (
	"os"

	"github.com/msto63/decorx/cmd/decorx/cmd"
)

func main() {
	os.Exit(cmd.ExitCode(cmd.Execute()))
}
