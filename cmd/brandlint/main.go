// brandlint - Accessibility checks for brand themes
//
// brandlint validates branding themes against WCAG contrast and readability
// rules, suggests accessible colours and serves the checks over HTTP.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/brandlint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
