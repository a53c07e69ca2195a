// Package main prints a fresh admin session signing secret.
package main

import (
	"flag"
	"os"

	"github.com/louisbranch/adminchrome/internal/platform/config"
	"github.com/louisbranch/adminchrome/internal/tools/sessionsecret"
)

func main() {
	cfg, err := sessionsecret.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := sessionsecret.Run(cfg, os.Stdout, nil); err != nil {
		config.Exitf("generate secret: %v", err)
	}
}
