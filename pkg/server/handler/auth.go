/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/nscaledev/uni-booker/pkg/openapi"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// TokenCookie is the cookie a session token is presented in.
const TokenCookie = "token"

const badCredentials = "Bad credentials"

func (h *Handler) credentialsMatch(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(h.options.Username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(h.options.Password))

	return u&p == 1
}

// authorized accepts either a token cookie issued by PostAuth or the
// administrator credentials as basic auth.
func (h *Handler) authorized(r *http.Request) bool {
	if cookie, err := r.Cookie(TokenCookie); err == nil && h.store.ValidToken(cookie.Value) {
		return true
	}

	if username, password, ok := r.BasicAuth(); ok && h.credentialsMatch(username, password) {
		return true
	}

	return false
}

func (h *Handler) requireAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.authorized(r) {
			log.FromContext(r.Context()).Info("request forbidden", "method", r.Method, "path", r.URL.Path)
			writeTextResponse(w, r, http.StatusForbidden)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// PostAuth exchanges credentials for a token.  Bad credentials are reported
// in the body of a successful response, as the booking API does.
func (h *Handler) PostAuth(w http.ResponseWriter, r *http.Request) {
	var request openapi.TokenRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || !h.credentialsMatch(request.Username, request.Password) {
		writeJSONResponse(w, r, http.StatusOK, &openapi.TokenResponse{Reason: badCredentials})
		return
	}

	h.setUncacheable(w)
	writeJSONResponse(w, r, http.StatusOK, &openapi.TokenResponse{Token: h.store.IssueToken()})
}
