// Package main mints an admin session token for a user.
package main

import (
	"flag"
	"os"

	"github.com/louisbranch/adminchrome/internal/platform/config"
	"github.com/louisbranch/adminchrome/internal/tools/sessiontoken"
)

func main() {
	cfg, err := sessiontoken.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := sessiontoken.Run(cfg, os.Stdout); err != nil {
		config.Exitf("mint token: %v", err)
	}
}
