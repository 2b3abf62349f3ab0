package main

import (
	"os"

	"fivecardshowdown/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// prints a config.yaml populated with the defaults
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
