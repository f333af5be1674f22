// Command attrlink checks and prints link files.
//
//	attrlink check --file links.yaml --packages ./examples/users
//	attrlink dump --file links.yaml [--raw]
//
// Every flag can also be set through the environment with the ATTRLINK_
// prefix, e.g. ATTRLINK_FILE=links.yaml, or in a config file given with
// --config.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logrus.Errorf("attrlink: %v", err)
		os.Exit(1)
	}
}
