package main

import (
	"fmt"
	"log"
	"log/syslog"
	"os"
	"os/user"
	"runtime/debug"
	"sync"
)

var (
	logger      *syslog.Writer
	stderr      = log.New(os.Stderr, "blinker: ", log.LstdFlags)
	loggerOnce  sync.Once
	debugLogsOn bool
)

func openLogger() {
	loggerOnce.Do(func() {
		facility := syslog.LOG_USER
		if u, err := user.Current(); err == nil && u.Username == "root" {
			facility = syslog.LOG_DAEMON
		}
		w, err := syslog.New(facility|syslog.LOG_INFO, "blinker")
		if err != nil {
			stderr.Printf("syslog unavailable, logging to stderr: %v", err)
			return
		}
		logger = w
	})
}

// EnableDebug turns on Debug and Trace output.
func EnableDebug() {
	debugLogsOn = true
}

func write(level string, send func(*syslog.Writer, string) error, format string, args ...interface{}) error {
	openLogger()
	msg := fmt.Sprintf(format, args...)
	if logger == nil {
		stderr.Printf("%s: %s", level, msg)
		return nil
	}
	return send(logger, msg)
}

func Alert(format string, args ...interface{}) error {
	return write("ALERT", (*syslog.Writer).Alert, format, args...)
}

func Crit(format string, args ...interface{}) error {
	return write("CRIT", (*syslog.Writer).Crit, format, args...)
}

func Emerg(format string, args ...interface{}) error {
	return write("EMERG", (*syslog.Writer).Emerg, format, args...)
}

func Error(format string, args ...interface{}) error {
	return write("ERROR", (*syslog.Writer).Err, format, args...)
}

func Notice(format string, args ...interface{}) error {
	return write("NOTICE", (*syslog.Writer).Notice, format, args...)
}

func Warn(format string, args ...interface{}) error {
	return write("WARN", (*syslog.Writer).Warning, format, args...)
}

func Info(format string, args ...interface{}) error {
	return write("INFO", (*syslog.Writer).Info, format, args...)
}

func Debug(format string, args ...interface{}) error {
	if !debugLogsOn {
		return nil
	}
	return write("DEBUG", (*syslog.Writer).Debug, format, args...)
}

func Log(format string, args ...interface{}) error {
	return Info(format, args...)
}

// Trace logs the message at debug level along with the current stack.
func Trace(format string, args ...interface{}) error {
	return Debug("%s\n%s", fmt.Sprintf(format, args...), debug.Stack())
}

// Fatal logs at critical level and exits the process.
func Fatal(format string, args ...interface{}) {
	Crit(format, args...)
	stderr.Printf(format, args...)
	os.Exit(1)
}
