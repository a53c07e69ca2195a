package config

import (
	"fmt"
	"log"
	"os"
)

// Exitf writes a formatted error message to stderr, prefixed with the
// process log prefix, and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprint(os.Stderr, log.Prefix())
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
