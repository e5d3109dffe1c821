// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"

	"github.com/gopxl/mainthread/v2"

	cmdl "gocube/commandline"
	"gocube/config"
	"gocube/conlog"
)

func main() {
	flag.Parse()
	cfg, err := config.Load(cmdl.ConfigPath())
	if err != nil {
		conlog.Fatalf("%v", err)
	}
	cmdl.Apply(cfg)
	conlog.SetDebug(cfg.Debug)

	mainthread.Run(func() {
		var err error
		// SDL and GL calls are only valid on the main thread
		mainthread.Call(func() {
			err = run(cfg)
		})
		if err != nil {
			conlog.Fatalf("%v", err)
		}
	})
}
