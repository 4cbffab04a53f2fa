// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-stego/internal/logger"
)

// withLogging writes one access log entry per request using the logger that
// withTraceID stored in the request context. Server errors are logged at
// error level, client errors at warn level.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		requestSize := r.ContentLength

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusSent()

		event := log.WithLevel(levelForStatus(status)).
			Str("uri", uri).
			Str("method", method).
			Int64("request_size", requestSize).
			Int("status", status).
			Str("content_type", lw.contentType).
			Dur("duration", duration).
			Int("size", lw.size)
		if lw.writeErr != nil {
			event = event.AnErr("write_error", lw.writeErr)
		}
		event.Send()
	})
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
