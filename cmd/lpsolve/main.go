// Command lpsolve is the plain-text front end for the LP/IP solver: it
// parses a model file in the package parser grammar, runs the requested
// solver, and renders its trace and final report to stdout.
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/kvlabs/lpsolve/cmd/lpsolve/cli"
)

func main() {
	if err := cli.Root().Execute(); err != nil {
		logrus.WithError(err).Error("lpsolve: command failed")
		os.Exit(1)
	}
}
