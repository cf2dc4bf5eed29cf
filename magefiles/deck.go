//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Strip writes slides.md without annotation lines to codes.md.
func Strip() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "strip")
}

// Retime recalculates the timing annotations in slides.md.
func Retime() error {
	mg.Deps(Build)
	return sh.RunV(binPath(), "retime")
}

func binPath() string {
	return "./" + binDir + "/" + binName
}
