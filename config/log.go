package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yaoapp/kun/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogOutput is the rotating log file, nil when logging to stdout.
var LogOutput io.WriteCloser

// OpenLog configures the kun logger (level, format, output) from Conf.
func OpenLog() error {
	log.SetLevel(logLevel(Conf))

	if strings.EqualFold(Conf.LogMode, "JSON") {
		log.SetFormatter(log.JSON)
	} else {
		log.SetFormatter(log.TEXT)
	}

	if Conf.Log == "" {
		log.SetOutput(os.Stdout)
		gin.DefaultWriter = os.Stdout
		return nil
	}

	file, err := filepath.Abs(Conf.Log)
	if err != nil {
		return fmt.Errorf("config: resolve log path %s: %w", Conf.Log, err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("config: create log dir: %w", err)
	}

	LogOutput = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    Conf.LogMaxSize, // megabytes
		MaxBackups: Conf.LogMaxBackups,
		MaxAge:     Conf.LogMaxAge, // days
		LocalTime:  Conf.LogLocalTime,
	}
	log.SetOutput(LogOutput)
	gin.DefaultWriter = LogOutput
	return nil
}

// CloseLog closes the log file if one is open.
func CloseLog() error {
	if LogOutput == nil {
		return nil
	}
	err := LogOutput.Close()
	LogOutput = nil
	return err
}

func logLevel(cfg Config) log.Level {
	switch strings.ToLower(cfg.LogLevel) {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	if cfg.Mode == ModeDevelopment {
		return log.TraceLevel
	}
	return log.InfoLevel
}
