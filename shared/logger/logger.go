// Package logger owns the global zerolog logger: a console writer while
// booting or developing, JSON lines everywhere else.
package logger

import (
	"dockhub/config"
	"dockhub/shared/constant"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultLevel = zerolog.TraceLevel

// InitLogger installs the boot logger used until the configuration is loaded.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(defaultLevel)

	log.Logger = console(os.Stdout)
	log.Trace().Msg("Zerolog initialized.")
}

// Configure applies LOG_LEVEL and, outside development, swaps to JSON output tagged with the app name.
func Configure(cfg *config.Config) {
	SetLogLevel(cfg)

	if IsConsoleEnv(cfg.Server.Env) {
		return
	}

	log.Logger = structured(os.Stdout, cfg.App.Name)
	log.Debug().Str("env", cfg.Server.Env).Msg("Switched to JSON log output.")
}

func IsConsoleEnv(env string) bool {
	return env == constant.Empty || env == constant.ServerEnvDevelopment
}

func console(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

func structured(w io.Writer, app string) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("app", app).Logger()
}

// SetLogLevel falls back to trace when LOG_LEVEL is empty or unknown.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == constant.Empty {
		level = defaultLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no usable log level, using default.")
	}

	zerolog.SetGlobalLevel(level)
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
