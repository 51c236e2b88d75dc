// Mcalc is a command line calculator for scalars, vectors and matrices.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/struct2env"
	"fortio.org/terminal"
	"mcalc.io/mcalc/eval"
	"mcalc.io/mcalc/extensions" // register builtins
	"mcalc.io/mcalc/repl"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	HistoryFile string
	Settings    string // yaml startup settings file.
}

var config = Config{}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("MCALC_", res, true)
	fmt.Fprintln(w, "# Mcalc environment variables:")
	fmt.Fprint(w, str)
}

var hookBefore, hookAfter func() int

func Main() int {
	commandFlag := flag.String("c", "", "command/inline lines to evaluate instead of interactive mode")
	showParse := flag.Bool("parse", false, "show parse tree")
	showEval := flag.Bool("eval", true, "show eval results")
	sharedState := flag.Bool("shared-state", false, "All files share same calculator state (default is new state for each)")
	digits := flag.Int("digits", repl.NoDigitsFlag, "decimal `digits` shown, -1 for full precision (default 9 or from settings)")
	radians := flag.Bool("radians", false, "start in radians trig mode instead of degrees")
	extraConstants := flag.Bool("extra-constants", false, "also define tau and phi")
	const historyDefault = "~/.mcalc_history" // virtual/token filename, will be replaced by actual home dir if not changed.
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	defaultHistoryFile := historyDefault
	errs := struct2env.SetFromEnv("MCALC_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	if config.HistoryFile != "" {
		defaultHistoryFile = config.HistoryFile
	}
	historyFile := flag.String("history", defaultHistoryFile, "history `file` to use")
	settingsFile := flag.String("settings", config.Settings, "yaml `file` with trig_mode, digits and variables to start with")
	maxHistory := flag.Int("max-history", terminal.DefaultHistoryCapacity, "max history `size`, use 0 to disable.")
	maxDepth := flag.Int("max-depth", eval.DefaultMaxDepth-1, "Maximum evaluation depth")
	panicOk := flag.Bool("panic", false, "Don't catch panic - only for development/debugging")

	cli.ArgsHelp = "files to evaluate line by line or `-` for stdin without prompt or no arguments for interactive mode..."
	cli.MaxArgs = -1
	cli.Main()
	histFile := *historyFile
	if histFile == historyDefault {
		homeDir, err := os.UserHomeDir()
		histFile = filepath.Join(homeDir, ".mcalc_history")
		if err != nil {
			log.Warnf("Couldn't get user home dir: %v", err)
			histFile = ""
		}
	}
	if *digits != repl.NoDigitsFlag && !repl.DigitsOk(*digits) {
		return log.FErrf("Invalid -digits %d, should be between -1 and %d", *digits, repl.MaxDigits)
	}
	log.Infof("mcalc %s - welcome!", cli.LongVersion)
	options := repl.Options{
		ShowParse:   *showParse,
		ShowEval:    *showEval,
		HistoryFile: histFile,
		MaxHistory:  *maxHistory,
		MaxDepth:    *maxDepth + 1,
		PanicOk:     *panicOk,
		Digits:      *digits,
		Radians:     *radians,
	}
	if *settingsFile != "" {
		st, err := repl.LoadSettings(*settingsFile)
		if err != nil {
			return log.FErrf("Error loading settings: %v", err)
		}
		options.Settings = st
	}
	if hookBefore != nil {
		ret := hookBefore()
		if ret != 0 {
			return ret
		}
	}
	err := extensions.Init(&extensions.Config{ExtraConstants: *extraConstants})
	if err != nil {
		return log.FErrf("Error initializing extensions: %v", err)
	}
	if *commandFlag != "" {
		options.NoColor = true
		res, errs := repl.EvalStringWithOption(options, *commandFlag)
		if len(errs) > 0 {
			log.Errf("Errors: %v", errs)
		}
		fmt.Print(res)
		return len(errs)
	}
	if len(flag.Args()) == 0 {
		return repl.Interactive(options)
	}
	options.NoColor = true
	s, err := repl.NewState(options)
	if err != nil {
		return log.FErrf("Error applying settings: %v", err)
	}
	for _, file := range flag.Args() {
		ret := processOneFile(file, s, options)
		if ret != 0 {
			return ret
		}
		if !*sharedState {
			s, _ = repl.NewState(options) // settings already validated above.
		}
	}
	log.Infof("All done")
	if hookAfter != nil {
		return hookAfter()
	}
	return 0
}

func processOneStream(s *eval.State, in io.Reader, options repl.Options) int {
	errs := repl.EvalAll(s, in, os.Stdout, options)
	if len(errs) > 0 {
		log.Errf("Errors: %v", errs)
	}
	return len(errs)
}

func processOneFile(file string, s *eval.State, options repl.Options) int {
	if file == "-" {
		log.Infof("Running on stdin")
		return processOneStream(s, os.Stdin, options)
	}
	f, err := os.Open(file)
	if err != nil {
		return log.FErrf("%v", err)
	}
	log.Infof("Running %s", file)
	code := processOneStream(s, f, options)
	f.Close()
	return code
}
