package debug

import (
	"path/filepath"
	"sync"

	"thicket/app"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appLogFile = "app.log"
const errorLogFile = "error.log"

type ErrorLvl int

const (
	Info ErrorLvl = iota
	Debug
	Warn
	Error
)

var errLvl = map[ErrorLvl]string{
	Info:  "INFO",
	Debug: "DEBUG",
	Warn:  "WARN",
	Error: "ERROR",
}

func (e ErrorLvl) String() string {
	return errLvl[e]
}

var (
	logger   *zap.SugaredLogger
	initOnce sync.Once
	mu       sync.Mutex
)

// Init builds the file logger. Everything goes to app.log, errors
// are additionally written to error.log.
// Debug messages are only written if verbose is set.
func Init(verbose bool) error {
	l, err := build(verbose)
	if err != nil {
		return err
	}

	SetLogger(l)
	return nil
}

func build(verbose bool) (*zap.Logger, error) {
	configDir, err := app.ConfigDir()
	if err != nil {
		return nil, err
	}

	appSink, _, err := zap.Open(filepath.Join(configDir, appLogFile))
	if err != nil {
		return nil, err
	}

	errSink, _, err := zap.Open(filepath.Join(configDir, errorLogFile))
	if err != nil {
		return nil, err
	}

	minLevel := zapcore.InfoLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}

	encConf := zap.NewDevelopmentEncoderConfig()
	encConf.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	enc := zapcore.NewConsoleEncoder(encConf)

	core := zapcore.NewTee(
		zapcore.NewCore(enc, appSink, minLevel),
		zapcore.NewCore(enc, errSink, zapcore.ErrorLevel),
	)

	return zap.New(core), nil
}

// SetLogger replaces the logger used by the Log* functions.
func SetLogger(l *zap.Logger) {
	initOnce.Do(func() {})

	mu.Lock()
	defer mu.Unlock()
	logger = l.Sugar()
}

// Sync flushes buffered log entries
func Sync() {
	if l := current(); l != nil {
		_ = l.Sync()
	}
}

func LogInfo(args ...any) {
	logMsg(Info, args...)
}

func LogDebug(args ...any) {
	logMsg(Debug, args...)
}

func LogWarn(args ...any) {
	logMsg(Warn, args...)
}

func LogErr(args ...any) {
	logMsg(Error, args...)
}

func logMsg(level ErrorLvl, args ...any) {
	l := current()

	switch level {
	case Info:
		l.Infoln(args...)
	case Debug:
		l.Debugln(args...)
	case Warn:
		l.Warnln(args...)
	case Error:
		l.Errorln(args...)
	}
}

// current returns the active logger, lazily creating the file logger
// on first use. If that fails all messages are discarded.
func current() *zap.SugaredLogger {
	initOnce.Do(func() {
		l, err := build(app.Flags.Debug)
		if err != nil {
			l = zap.NewNop()
		}

		mu.Lock()
		logger = l.Sugar()
		mu.Unlock()
	})

	mu.Lock()
	defer mu.Unlock()
	return logger
}
