// Package logger builds the zap loggers used by the command line tools.
package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogConf struct {
	Level      string `json:"level"`    // debug, info, warn, error; default info
	Encoding   string `json:"encoding"` // console or json; default console
	Output     string `json:"output"`   // stdout, stderr or a file path; default stderr
	MaxSize    int    `json:"maxSize"`  // megabytes, file output only
	MaxAge     int    `json:"maxAge"`   // days
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

// Sugar is the process wide logger. It discards everything until Init is called.
var Sugar = zap.NewNop().Sugar()

func Init(conf LogConf) error {
	l, err := NewZapLogger(conf)
	if err != nil {
		return err
	}
	Sugar = l.Sugar()
	return nil
}

func NewZapLogger(conf LogConf) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if conf.Level != "" {
		if err := level.UnmarshalText([]byte(strings.ToLower(conf.Level))); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	switch strings.ToLower(conf.Encoding) {
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, writeSyncer(conf), level)
	return zap.New(core, zap.AddCaller()), nil
}

func writeSyncer(conf LogConf) zapcore.WriteSyncer {
	switch conf.Output {
	case "", "stderr":
		return zapcore.Lock(os.Stderr)
	case "stdout":
		return zapcore.Lock(os.Stdout)
	}
	maxSize := conf.MaxSize
	if maxSize <= 0 {
		maxSize = 100
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   conf.Output,
		MaxSize:    maxSize,
		MaxAge:     conf.MaxAge,
		MaxBackups: conf.MaxBackups,
		Compress:   conf.Compress,
	})
}
