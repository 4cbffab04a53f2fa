// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-stego/internal/logger"
)

// hideMethod is the router's MethodNotAllowed handler. The codec endpoints
// accept only POST and the version endpoint only GET; any other method on
// those paths is answered exactly like an unknown path, with 404 and no
// Allow header.
func hideMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not served on this path")

	w.WriteHeader(http.StatusNotFound)
}
