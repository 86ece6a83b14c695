package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/strobe/internal/config"
)

// SetupFileLogging configures zerolog to write to a file.
// The display owns the terminal, so it cannot log to stderr.
// The returned func closes the log files.
func SetupFileLogging(debug bool) (func(), error) {
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return nil, err
	}

	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	logFile := filepath.Join(logDir, "strobe.log")
	//nolint:gosec // G304: Path is built from the data directory
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	files := []*os.File{file}

	// Always write JSON to file
	writers := []io.Writer{file}

	// In debug mode, also write human-readable logs to a separate debug file
	if debug {
		debugFile := filepath.Join(logDir, "strobe-debug.log")
		//nolint:gosec // G304: Path is built from the data directory
		debugFileWriter, err := os.OpenFile(debugFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("open debug log file: %w", err)
		}
		files = append(files, debugFileWriter)
		writers = append(writers, zerolog.ConsoleWriter{Out: debugFileWriter, TimeFormat: time.RFC3339})
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	setLevel(debug)

	log.Info().
		Str("log_file", logFile).
		Bool("debug", debug).
		Msg("File logging initialized")

	return func() {
		log.Logger = zerolog.Nop()
		for _, f := range files {
			f.Close()
		}
	}, nil
}

// setupDisplayLogging logs to files, or discards logs when the files cannot
// be opened. Logging is never a reason not to start the display.
func setupDisplayLogging(debug bool) func() {
	closeLogs, err := SetupFileLogging(debug)
	if err != nil {
		log.Logger = zerolog.Nop()
		return func() {}
	}
	return closeLogs
}

// SetupConsoleLogging sends human-readable logs to stderr.
func SetupConsoleLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	setLevel(debug)
}

func setLevel(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
