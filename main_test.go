//go:build !tinygo && !windows
// +build !tinygo,!windows

package main_test

import (
	"os"
	"testing"

	"fortio.org/testscript"
	main "mcalc.io/mcalc"
)

func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"mcalc": main.Main,
	}))
}

func TestMcalcCli(t *testing.T) {
	testscript.Run(t, testscript.Params{Dir: "./"})
}
