package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/klabast/wb-services/fullbleed-calendar/internal/commands"
)

func main() {
	if err := commands.NewRootCommand(os.Stdout).Execute(); err != nil {
		logrus.WithError(err).Error("fullbleed-calendar failed")
		os.Exit(1)
	}
}
