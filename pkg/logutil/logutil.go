// Package logutil provides logging utilities.
//
// All loggers in this module are created with GetLogger, so that their
// destination can be redirected collectively with SetOutput or
// SetOutputFile. Logging is discarded by default.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var mu sync.Mutex

var (
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. The destination of the
// logger is controlled by SetOutput and SetOutputFile.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, creating ones included, to
// the given Writer.
func SetOutput(newOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeOutFile()
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile redirects the output of all loggers to the named file,
// creating it if it does not exist. If the name is empty, logging is
// discarded instead.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %v: %v", fname, err)
	}
	mu.Lock()
	defer mu.Unlock()
	closeOutFile()
	out = file
	outFile = file
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}

// Called with mu held.
func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
