// Command lvpar runs a partitioned parallel update over a zero matrix and
// prints the result.
//
// Usage:
//
//	lvpar [iterations rows cols workers] [flags]
//
// Recommended defaults: lvpar 5000 10 10 4
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.WithError(err).Error("lvpar failed")
		os.Exit(1)
	}
}
