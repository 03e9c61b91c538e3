package main

import (
	"io"
	"log"
	"os"
)

var (
	debugEnabled bool
	debugLogger  = log.New(io.Discard, "", 0)
)

// initDebug turns on debug logging to stderr when LIGHTBOX_DEBUG=1
func initDebug() {
	if os.Getenv("LIGHTBOX_DEBUG") != "1" {
		return
	}
	debugEnabled = true
	debugLogger = log.New(os.Stderr, "DEBUG: ", log.Ltime|log.Lmicroseconds)
	debugLogger.Println("Debug mode enabled")
}

func debugLog(format string, v ...interface{}) {
	if debugEnabled {
		debugLogger.Printf(format, v...)
	}
}
