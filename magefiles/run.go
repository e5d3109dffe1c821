//go:build mage

// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the demo with debug logging.
func (Run) Debug() error {
	mg.Deps(Build.Shaders)
	fmt.Println("Run gocube...")
	_, err := executeCmd("go", withArgs("run", ".", "-debug"), withStream())
	return err
}

// Runs the demo.
func (Run) Demo() error {
	mg.Deps(Build.Shaders)
	_, err := executeCmd("go", withArgs("run", "."), withStream())
	return err
}
