package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// The package logger starts as a nop so library code can log before Init.
var log = zap.NewNop()

// Init builds the package logger. verbose selects zap's human-readable
// development config with debug level enabled.
func Init(verbose bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	log = l.Named("dipper")
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = log.Sync()
}

func Info(format string, args ...interface{}) {
	log.Info(fmt.Sprintf(format, args...))
}

func Debug(format string, args ...interface{}) {
	log.Debug(fmt.Sprintf(format, args...))
}

func Error(format string, args ...interface{}) {
	log.Error(fmt.Sprintf(format, args...))
}

func Fatal(format string, args ...interface{}) {
	log.Fatal(fmt.Sprintf(format, args...))
}
