package main

import (
	"os"

	"github.com/jengzang/bodymap-backend-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
