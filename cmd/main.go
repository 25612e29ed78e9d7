package main

import (
	"os"

	"github.com/hamidzr/gweather/internal/cli"
	"github.com/hamidzr/gweather/internal/logger"
	"github.com/hamidzr/gweather/model"
	"github.com/sirupsen/logrus"
)

func main() {
	stopProfiling := startProfiling()
	cmd := cli.InitCLI()
	logger.SetupLogger()
	err := cmd.Execute()
	stopProfiling()

	code, cause := model.ExitCodeFromError(err)
	if cause != nil && code != model.UserCanceled {
		logrus.Error(cause)
	}
	os.Exit(int(code))
}
