// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-medcare/internal/utils"
)

// signatureHeader carries the hex HMAC-SHA256 of the response body.
const signatureHeader = "HashSHA256"

// bufferedWriter holds the body back so a header can be computed from it.
type bufferedWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bufferedWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.buf.Write(b)
}

// signResponse signs successful response bodies with the admin secret so
// that exported files can be checked for tampering later. Error responses
// pass through unsigned.
func (h *Handler) signResponse(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedWriter{ResponseWriter: w}
		next.ServeHTTP(bw, r)

		if bw.status == 0 {
			bw.status = http.StatusOK
		}

		body := bw.buf.Bytes()
		if bw.status < http.StatusBadRequest && h.signKey != "" {
			w.Header().Set(signatureHeader, utils.HashString(string(body), h.signKey))
		}

		w.WriteHeader(bw.status)
		if _, err := w.Write(body); err != nil {
			h.logger.Err(err).Str("func", "*Handler.signResponse").Msg("failed to write signed response")
		}
	})
}
