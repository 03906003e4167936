package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"jlehtis/kuitti-csv/cmd/batch"
	"jlehtis/kuitti-csv/cmd/drive"
	"jlehtis/kuitti-csv/cmd/parse"
	"jlehtis/kuitti-csv/cmd/root"
)

func init() {
	// Load environment variables before any logging happens, then set the
	// global log level so every logger created later inherits it.
	loadEnvSilently()
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(drive.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
