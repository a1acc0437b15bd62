// codeconv is a CLI tool that converts country and language codes to names and back.
package main

import (
	"github.com/hightemp/codeconv/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
