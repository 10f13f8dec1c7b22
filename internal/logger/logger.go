package logger

import (
	"os"
	"time"

	"Garagem/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// Logger padrão antes do Init, para mensagens emitidas durante o bootstrap
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configura o logger global conforme o ambiente
func Init(cfg *config.Config) {
	level := zerolog.DebugLevel
	if cfg.IsProduction() {
		level = zerolog.InfoLevel
	}

	var writer = zerolog.MultiLevelWriter(os.Stdout)
	if !cfg.IsProduction() {
		writer = zerolog.MultiLevelWriter(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}

	log = zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Logger()
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
