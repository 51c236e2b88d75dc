//go:build wasm
// +build wasm

/*
Web assembly main for mcalc, exposing repl.EvalString to JS
*/

package main

import (
	"fmt"
	"runtime/debug"
	"strings"
	"syscall/js"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/version"
	"mcalc.io/mcalc/extensions"
	"mcalc.io/mcalc/repl"
)

var (
	// Browsers run out of js stack well before the native default.
	WasmMaxDepth = 3_100

	// Set a reasonably low memory limit for wasm. 512MiB.
	WasmMemLimit = int64(512 * 1024 * 1024)
)

func jsEval(_ js.Value, args []js.Value) any {
	if len(args) != 1 && len(args) != 2 {
		return "ERROR: number of arguments doesn't match should be string or string, digits"
	}
	input := args[0].String()
	opts := repl.EvalStringOptions()
	opts.MaxDepth = WasmMaxDepth
	if len(args) == 2 {
		opts.Digits = args[1].Int()
		if !repl.DigitsOk(opts.Digits) {
			return fmt.Sprintf("ERROR: digits %d should be between -1 and %d", opts.Digits, repl.MaxDigits)
		}
	}
	res, errs := repl.EvalStringWithOption(opts, input)
	result := make(map[string]any)
	result["result"] = strings.TrimSuffix(res, "\n")
	// transfer errors to []any (!)
	anyErrs := make([]any, len(errs))
	for i, v := range errs {
		anyErrs[i] = v
	}
	result["errors"] = anyErrs
	return result
}

func main() {
	cli.Main() // just to get version etc
	_, mcalcVersion, _ := version.FromBuildInfoPath("mcalc.io/mcalc")
	prev := debug.SetMemoryLimit(WasmMemLimit)
	log.Infof("Mcalc wasm main %s - prev memory limit %d now %d", mcalcVersion, prev, WasmMemLimit)
	done := make(chan struct{})
	global := js.Global()
	global.Set("mcalc", js.FuncOf(jsEval))
	global.Set("mcalcVersion", js.ValueOf(mcalcVersion))
	err := extensions.Init(nil)
	if err != nil {
		log.Critf("Error initializing extensions: %v", err)
	}
	<-done
}
