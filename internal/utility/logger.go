package utility

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a JSON logger on stdout as the global and context
// default logger. Unknown levels fall back to info.
func InitLogger(level string) zerolog.Logger {
	return initLogger(os.Stdout, level)
}

func initLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	logger := zerolog.New(w).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(lvl)
	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger

	return logger
}
