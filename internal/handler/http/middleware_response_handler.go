// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter records what a handler sent so that withLogging can report
// it once the handler returns. The body itself is never retained: encoded
// images can be several megabytes.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until the header goes out.
	status int

	// contentType is the Content-Type the handler had set when the header
	// went out, e.g. image/png for /api/encode and application/json for
	// /api/decode and /api/capacity.
	contentType string

	// size counts body bytes accepted by the underlying writer.
	size int

	// writeErr is the first body write that failed, typically a client that
	// hung up while a large image was being streamed.
	writeErr error
}

// WriteHeader forwards only the first status; later calls are dropped.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.status != 0 {
		return
	}
	w.status = statusCode
	w.contentType = w.Header().Get("Content-Type")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	if err != nil && w.writeErr == nil {
		w.writeErr = err
	}
	return n, err
}

// statusSent is the status the client received. A handler that wrote
// nothing at all still produced an implicit 200.
func (w *responseWriter) statusSent() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}
