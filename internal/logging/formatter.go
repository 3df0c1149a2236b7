// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// LogFormatter is a chi middleware.LogFormatter backed by the service logger
type LogFormatter struct {
	Logger LoggerInterface
}

func (f *LogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	entry := new(LogEntry)
	entry.Logger = f.Logger
	entry.method = r.Method
	entry.uri = r.RequestURI
	entry.requestID = middleware.GetReqID(r.Context())

	return entry
}

type LogEntry struct {
	Logger LoggerInterface

	method    string
	uri       string
	requestID string
}

func (e *LogEntry) Write(status, bytes int, header http.Header, elapsed time.Duration, extra interface{}) {
	e.Logger.Debugf(
		"request_id=%s method=%s uri=%s status=%d bytes=%d elapsed=%s",
		e.requestID, e.method, e.uri, status, bytes, elapsed,
	)
}

func (e *LogEntry) Panic(v interface{}, stack []byte) {
	e.Logger.Errorf("request_id=%s panic=%v stack=%s", e.requestID, v, string(stack))
}

// NewLogFormatter only produces output when the logger runs at DEBUG level
func NewLogFormatter(logger LoggerInterface) *LogFormatter {
	f := new(LogFormatter)
	f.Logger = logger

	return f
}
