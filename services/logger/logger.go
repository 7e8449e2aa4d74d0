package logger

import "log"

// Level định nghĩa mức độ log của engine
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger là đầu ra log của OfferEngine, cho phép thay thế khi test
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DefaultLogger ghi qua package log chuẩn, lọc theo mức
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger tạo một instance mới của DefaultLogger
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
	}
}

func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	l.write(DebugLevel, "DEBUG", format, v...)
}

func (l *DefaultLogger) Info(format string, v ...interface{}) {
	l.write(InfoLevel, "INFO", format, v...)
}

func (l *DefaultLogger) Error(format string, v ...interface{}) {
	l.write(ErrorLevel, "ERROR", format, v...)
}

func (l *DefaultLogger) write(level Level, tag, format string, v ...interface{}) {
	if level < l.level {
		return
	}
	log.Printf("[offer-engine] ["+tag+"] "+format, v...)
}
