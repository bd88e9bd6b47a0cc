package main

import (
	"os"

	"github.com/blaisecz/bedtime-estimator/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
