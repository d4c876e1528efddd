// Package logger wires zap with file rotation and exposes the sugared
// logger the rest of the service writes to.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"PipeFlow/pkg/conf"
)

var Logger *zap.SugaredLogger

// InitLogger builds the process logger, writing both to stdout and to a
// rotated file named after the service.
func InitLogger(name string) {
	dir := "./logs"
	maxSize, maxBackups, maxAge := 50, 5, 30
	if conf.Conf != nil {
		dir = conf.Conf.GetString("log.dir")
		maxSize = conf.Conf.GetInt("log.max_size_mb")
		maxBackups = conf.Conf.GetInt("log.max_backups")
		maxAge = conf.Conf.GetInt("log.max_age_days")
	}

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+".log"),
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotated), zap.InfoLevel)
	consoleCore := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(os.Stdout), zap.InfoLevel)

	Logger = zap.New(zapcore.NewTee(fileCore, consoleCore), zap.AddCaller()).Sugar()
}
