// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/utils"
)

// invalidMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unsupported method is answered with
// 404 and the plain-text body "Invalid Method" instead of chi's 405.
func invalidMethod(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteText(w, app.MsgInvalidMethod, http.StatusNotFound)
}

// notFound answers requests matching no route with the JSON error shape.
func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrInvalidID, app.MsgNotFound)
}
