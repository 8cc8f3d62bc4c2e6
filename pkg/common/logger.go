package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
)

type Logger interface {
	Log(message string)
}

type fileLogger struct {
	path       string
	fileWriter *bufio.Writer
}

// NewFileLogger logs to the file specified by `path`. If the file is unavailable, writes to the console.
func NewFileLogger(path string) Logger {
	return &fileLogger{
		path: path,
	}
}

func (f *fileLogger) Log(message string) {
	message = withNewLine(message)
	if f.fileWriterReady() {
		_, err := f.fileWriter.WriteString(message)
		if err != nil {
			f.logErrorToConsole(err.Error())
			f.logMessageToConsole(message)
		}
		err = f.fileWriter.Flush()
		if err != nil {
			f.logErrorToConsole(message)
		}
	} else {
		f.logMessageToConsole(message)
	}
}

func (f *fileLogger) logErrorToConsole(message string) {
	fmt.Printf("Error: %s. Logging switched to console.\n", message)
}

func (f *fileLogger) logMessageToConsole(message string) {
	fmt.Print(message)
}

func (f *fileLogger) fileWriterReady() bool {
	if f.fileWriter != nil {
		return true
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f.logErrorToConsole(err.Error())
		return false
	}
	f.fileWriter = bufio.NewWriter(file)
	return true
}

type consoleLogger struct {
	mutex  sync.Mutex
	writer io.Writer
}

// NewConsoleLogger writes every message to `writer` (usually os.Stdout) on its own line.
func NewConsoleLogger(writer io.Writer) Logger {
	return &consoleLogger{writer: writer}
}

func (c *consoleLogger) Log(message string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	_, _ = io.WriteString(c.writer, withNewLine(message))
}

type multiLogger struct {
	loggers []Logger
}

// NewMultiLogger forwards each message to all `loggers`, in order. Nil loggers are ignored.
func NewMultiLogger(loggers ...Logger) Logger {
	result := &multiLogger{}
	for _, logger := range loggers {
		if logger != nil {
			result.loggers = append(result.loggers, logger)
		}
	}
	return result
}

func (m *multiLogger) Log(message string) {
	for _, logger := range m.loggers {
		logger.Log(message)
	}
}

type nopLogger struct{}

// NewNopLogger discards everything. Useful in tests.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Log(string) {}

func withNewLine(message string) string {
	if len(message) == 0 || message[len(message)-1] != '\n' {
		return message + "\n"
	}
	return message
}
