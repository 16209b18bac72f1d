package main

import (
	"os"

	"github.com/aj-igherighe/bootstrap/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
