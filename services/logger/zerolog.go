// Package logsvc provides core.Logger implementations.
package logsvc

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ruviru/teachmate/core"
)

// ZerologLogger writes human-readable console output and, when a log
// directory is configured, a rotating JSON file.
type ZerologLogger struct {
	zl      zerolog.Logger
	enabled zerolog.Level
}

var _ core.Logger = (*ZerologLogger)(nil)

func NewZerologLogger(conf *core.Config) *ZerologLogger {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}
	if conf.Log.Dir != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(conf.Log.Dir, "teachmate.log"),
			MaxSize:    conf.Log.MaxSizeMB,
			MaxBackups: conf.Log.MaxBackups,
			MaxAge:     conf.Log.MaxAgeDays,
		})
	}

	level := zerolog.InfoLevel
	if conf.Debug {
		level = zerolog.DebugLevel
	}
	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Str("app", conf.AppName).Logger()
	return &ZerologLogger{zl: zl, enabled: level}
}

func (l *ZerologLogger) Enable(enabled bool) {
	if enabled {
		l.zl = l.zl.Level(l.enabled)
	} else {
		l.zl = l.zl.Level(zerolog.Disabled)
	}
}

// expected args: error and/or arbitrary values attached as fields
func (l *ZerologLogger) log(evt *zerolog.Event, msg string, args []interface{}) {
	for _, arg := range args {
		if err, ok := arg.(error); ok {
			evt = evt.Err(err)
		} else {
			evt = evt.Interface("detail", arg)
		}
	}
	evt.Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, args ...interface{}) { l.log(l.zl.Debug(), msg, args) }
func (l *ZerologLogger) Info(msg string, args ...interface{})  { l.log(l.zl.Info(), msg, args) }
func (l *ZerologLogger) Warn(msg string, args ...interface{})  { l.log(l.zl.Warn(), msg, args) }
func (l *ZerologLogger) Error(msg string, args ...interface{}) { l.log(l.zl.Error(), msg, args) }
