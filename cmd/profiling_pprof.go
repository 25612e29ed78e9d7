//go:build pprof

package main

import (
	"os"
	"runtime/pprof"

	"github.com/sirupsen/logrus"
)

const defaultProfilePath = "gweather-cpu.pprof"

// startProfiling writes a cpu profile to $GWEATHER_CPU_PROFILE, or
// gweather-cpu.pprof in the working directory.
func startProfiling() func() {
	path := os.Getenv("GWEATHER_CPU_PROFILE")
	if path == "" {
		path = defaultProfilePath
	}
	f, err := os.Create(path)
	if err != nil {
		logrus.WithError(err).Warn("could not create CPU profile")
		return func() {}
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		logrus.WithError(err).Warn("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}

	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			logrus.WithError(err).WithField("path", path).Warn("could not close CPU profile")
		}
	}
}
