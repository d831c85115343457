package env_config

import (
	"os"

	"github.com/rs/zerolog"
)

// SetLogLevelFromEnv applies LOG_LEVEL to the global zerolog level, falling
// back to warn when it is unset or does not parse.
func SetLogLevelFromEnv() {
	logLevel := os.Getenv("LOG_LEVEL")
	if level, err := zerolog.ParseLevel(logLevel); err == nil && logLevel != "" {
		zerolog.SetGlobalLevel(level)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
