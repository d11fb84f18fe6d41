// Package logger provides the tagged console logging used across the service.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	if os.Getenv("JUMPBOT_DEBUG") != "" {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

// Banner prints the startup banner with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Println("jumpbot: jump route query service")
	fmt.Printf("version %s\n", version)
}

// Server logs the listen address once the HTTP server is up.
func Server(addr string) {
	log.WithField("tag", "Server").Info(fmt.Sprintf("Listening on http://%s", addr))
}

// Section prints a visual divider for a named startup phase.
func Section(name string) {
	fmt.Printf("\n--- %s %s\n", name, strings.Repeat("-", max(0, 40-len(name))))
}

// Stats prints a single aligned startup statistic.
func Stats(key string, value int) {
	fmt.Printf("  %-14s %d\n", key, value)
}

// Info logs an informational message under a component tag.
func Info(tag, msg string) {
	log.WithField("tag", tag).Info(msg)
}

// Success logs a completed action under a component tag.
func Success(tag, msg string) {
	log.WithField("tag", tag).WithField("ok", true).Info(msg)
}

// Warn logs a recoverable problem under a component tag.
func Warn(tag, msg string) {
	log.WithField("tag", tag).Warn(msg)
}

// Error logs a failure under a component tag.
func Error(tag, msg string) {
	log.WithField("tag", tag).Error(msg)
}

// Debug logs a verbose message, visible only with JUMPBOT_DEBUG set.
func Debug(tag, msg string) {
	log.WithField("tag", tag).Debug(msg)
}
