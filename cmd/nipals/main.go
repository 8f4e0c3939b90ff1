// SPDX-License-Identifier: MIT

// Command nipals decomposes a stored data matrix into principal-component
// scores and loadings and checks them against reference values.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	appName = "nipals"
	version = "v0.3.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
