// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	LogLevel         Level     `json:"logLevel"`
	DisplayHighlight Highlight `json:"displayHighlight"`
	MsgPrefix        string    `json:"msgPrefix"`

	// LogFile, if non-empty, receives a copy of every displayed message.
	LogFile string `json:"logFile"`
	// MaxSize is the size in megabytes the log file reaches before it is
	// rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files to retain. 0 retains all of
	// them.
	MaxFiles int `json:"maxFiles"`
	// MaxAge is the number of days to retain rotated files. 0 retains them
	// regardless of their age.
	MaxAge int `json:"maxAge"`
	// Compress rotated files with gzip.
	Compress bool `json:"compress"`
}

// DefaultConfig logs at Info without colors and without a log file.
func DefaultConfig() Config {
	return Config{
		LogLevel:         Info,
		DisplayHighlight: Plain,
		MaxSize:          8,
		MaxFiles:         7,
	}
}

// New returns a logger that displays messages of [config.LogLevel] or higher
// on [w], and writes them to [config.LogFile] if it is set. Stopping the logger
// closes the log file but not [w].
func New(config Config, w io.Writer) Logger {
	cores := []WrappedCore{
		NewWrappedCore(config.LogLevel, nopCloser{w}, config.DisplayHighlight.ConsoleEncoder()),
	}
	if config.LogFile != "" {
		rw := &lumberjack.Logger{
			Filename:   config.LogFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		cores = append(cores, NewWrappedCore(config.LogLevel, rw, Plain.ConsoleEncoder()))
	}
	return NewLogger(config.MsgPrefix, cores...)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
