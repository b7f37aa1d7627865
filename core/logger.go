/* Twine - Thread network tooling
 *
 * Copyright (C) 2025 The Twine Authors.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package core

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

// Messages are filtered here as well as by apex, so that a disabled level never formats its message.
var (
	threshold = log.InfoLevel
	traceOn   = false
)

// InitializeLogger writes to stdout. See InitializeLoggerTo.
func InitializeLogger() {
	InitializeLoggerTo(os.Stdout)
}

// InitializeLoggerTo sends log lines to w through the apex text handler.
//
// The level comes from core.log_level. apex has no TRACE level, so TRACE
// enables DEBUG and additionally lets LogTrace through. Unknown names fall
// back to INFO.
func InitializeLoggerTo(w io.Writer) {
	log.SetHandler(text.New(w))

	name := GetConfigStringDefault("core.log_level", "INFO")
	level, err := log.ParseLevel(name)
	traceOn = err != nil && name == "TRACE"
	switch {
	case err == nil:
		threshold = level
	case traceOn:
		threshold = log.DebugLevel
	default:
		threshold = log.InfoLevel
	}
	log.SetLevel(threshold)
}

func tagged(module interface{}, message string) string {
	return fmt.Sprintf("[%v] %s", module, message)
}

// LogFatal logs and exits the process.
func LogFatal(module interface{}, message string) {
	log.Fatal(tagged(module, message))
}

// LogError, LogWarn, LogInfo and LogDebug log message tagged with module,
// which is usually a table or store (anything with String) or a plain name.
func LogError(module interface{}, message string) {
	if threshold <= log.ErrorLevel {
		log.Error(tagged(module, message))
	}
}

func LogWarn(module interface{}, message string) {
	if threshold <= log.WarnLevel {
		log.Warn(tagged(module, message))
	}
}

func LogInfo(module interface{}, message string) {
	if threshold <= log.InfoLevel {
		log.Info(tagged(module, message))
	}
}

func LogDebug(module interface{}, message string) {
	if threshold <= log.DebugLevel {
		log.Debug(tagged(module, message))
	}
}

// LogTrace emits at DEBUG, only when core.log_level is TRACE.
func LogTrace(module interface{}, message string) {
	if traceOn {
		log.Debug(tagged(module, message))
	}
}
