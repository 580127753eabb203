package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Operation events.
const (
	EventKeyWrapped      = "key_wrapped"
	EventKeyUnwrapped    = "key_unwrapped"
	EventIntegrityFailed = "integrity_failed"
	EventOperationFailed = "operation_failed"
)

// InitLogger initializes the zerolog logger with the specified debug mode and output format.
// Logs go to stderr so command output on stdout stays machine-readable.
func InitLogger(debug, human bool) {
	initLogger(os.Stderr, debug, human)
}

func initLogger(out io.Writer, debug, human bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano           // always initialize base logger with timestamp.
	base := zerolog.New(out).With().Timestamp().Logger() // initialize base logger.
	if human {
		log.Logger = base.Output(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339Nano,
		}) // select output format.
	} else {
		log.Logger = base // use JSON logger.
	}
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel) // set debug level.
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel) // set info level.
	}
}

// LogOperation logs a completed wrap or unwrap with structured fields.
// Only lengths are recorded, never key material.
func LogOperation(
	operationID string,
	event string,
	policy string,
	kekLen int,
	inputLen int,
	outputLen int,
) {
	log.Info().
		Str("event", event).
		Str("operation_id", operationID).
		Str("policy", policy).
		Int("kek_bits", kekLen*8).
		Int("input_len", inputLen).
		Int("output_len", outputLen).
		Msg("key wrap operation")
}

// LogFailure logs a rejected operation with its error code.
func LogFailure(operationID, operation, code string, err error) {
	log.Warn().
		Str("event", EventOperationFailed).
		Str("operation_id", operationID).
		Str("operation", operation).
		Str("error_code", code).
		Err(err).
		Msg("key wrap operation failed")
}
