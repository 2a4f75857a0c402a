// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xsettings/blob/main/LICENSE.

// Command xsettings inspects settings the way an application using the
// xsettings package would resolve them.
//
//	xsettings get PAGE_SIZE --type int --config app.yaml --set-default PAGE_SIZE=10
//	xsettings check --config app.env --require IMAGE_PATH --require DB_DSN
//	xsettings list --env-prefix APP_ --prefix IMAGE_
//
// The command's own log level is taken from XSETTINGS_LOG_LEVEL (default WARN).
package main

import (
	"os"

	"github.com/actforgood/xsettings"
)

func main() {
	logger := newLogger(os.Stderr, xsettings.EnvSource())
	exitCode := run(os.Args[1:], logger)
	_ = logger.Close()

	os.Exit(exitCode)
}
