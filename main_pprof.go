//go:build !no_pprof
// +build !no_pprof

package main

import (
	"flag"
	"path/filepath"

	"fortio.org/log"
	"github.com/pkg/profile"
)

var (
	cpuprofile = flag.String("profile-cpu", "", "write cpu profile as cpu.pprof in `directory`")
	memprofile = flag.String("profile-mem", "", "write memory profile as mem.pprof in `directory`")
)

// profiler is the running profile, only one of cpu or mem at a time.
var profiler interface{ Stop() }

func init() {
	hookBefore = pprofBeforeHook
	hookAfter = pprofAfterHook
}

func profileOptions(dir string, mode func(*profile.Profile)) []func(*profile.Profile) {
	return []func(*profile.Profile){
		mode,
		profile.ProfilePath(dir),
		profile.Quiet,
		profile.NoShutdownHook,
	}
}

func pprofBeforeHook() int {
	switch {
	case *cpuprofile != "" && *memprofile != "":
		return log.FErrf("only one of -profile-cpu and -profile-mem can be used at a time")
	case *cpuprofile != "":
		profiler = profile.Start(profileOptions(*cpuprofile, profile.CPUProfile)...)
		log.Infof("Writing cpu profile to %s", filepath.Join(*cpuprofile, "cpu.pprof"))
	case *memprofile != "":
		profiler = profile.Start(profileOptions(*memprofile, profile.MemProfile)...)
		log.Infof("Writing memory profile to %s", filepath.Join(*memprofile, "mem.pprof"))
	}
	return 0
}

func pprofAfterHook() int {
	if profiler != nil {
		profiler.Stop()
		log.Infof("Profile written")
	}
	return 0
}
