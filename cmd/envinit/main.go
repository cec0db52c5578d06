package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/envinit/pkg/envvar"
	"github.com/platinummonkey/envinit/pkg/manifest"
)

func main() {
	// Parse command line flags
	manifestPath := flag.String("manifest", "envinit.yaml", "Path to the variable manifest")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("Invalid log level %q: %v", *logLevel, err)
	}
	logger.SetLevel(level)

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load manifest")
	}

	resolver := envvar.NewResolver(envvar.WithLogger(logger))
	if err := m.Apply(resolver); err != nil {
		logger.WithError(err).Fatal("Environment initialization failed")
	}

	logger.WithField("variables", len(m.Variables)).Info("Environment initialized")
}
