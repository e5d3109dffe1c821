//go:build mage

// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"os/exec"

	"github.com/magefile/mage/mg"
)

var shaders = []string{"shaders/vertex.vert", "shaders/frag.frag"}

type Build mg.Namespace

// Checks the GLSL sources with glslangValidator, if it is installed.
func (Build) Shaders() error {
	if _, err := exec.LookPath("glslangValidator"); err != nil {
		fmt.Println("glslangValidator not found, skipping shader check")
		return nil
	}
	for _, s := range shaders {
		if _, err := executeCmd("glslangValidator", withArgs(s)); err != nil {
			return err
		}
	}
	return nil
}

// Builds the gocube binary.
func (Build) Binary() error {
	mg.Deps(Build.Shaders)
	_, err := executeCmd("go", withArgs("build", "-o", "gocube", "."), withStream())
	return err
}

type Check mg.Namespace

// Runs go vet on all packages.
func (Check) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

// Runs the tests of all packages.
func (Check) Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
