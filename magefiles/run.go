//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Evaluates the example scene once.
func (Run) Testbed() error {
	fmt.Println("Run testbed...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-scene", "testbed/scene.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Evaluates the example scene and again on every change until interrupted.
func (Run) Watch() error {
	fmt.Println("Watch testbed...")
	if _, err := executeCmd("go", withArgs("run", "main.go", "-scene", "testbed/scene.toml", "-watch"), withStream()); err != nil {
		return err
	}
	return nil
}
