package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sacvietnam/storefront/internal/config"
)

// Init configures the global zerolog logger: JSON at info level in
// production, a console writer at debug level everywhere else.
func Init(env config.Environment) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if env == config.Production {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger().Level(zerolog.InfoLevel)
		return
	}

	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger().Level(zerolog.DebugLevel)
}
