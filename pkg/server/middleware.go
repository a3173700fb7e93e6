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

package server

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Logger attaches a request scoped logger to the context, and optionally
// logs the outcome of each request.
func Logger(base logr.Logger, requestLog bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base.WithValues("requestID", chimw.GetReqID(r.Context()))

			if traceparent := r.Header.Get("traceparent"); traceparent != "" {
				logger = logger.WithValues("traceparent", traceparent)
			}

			ctx := log.IntoContext(r.Context(), logger)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			if requestLog {
				logger.Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "bytes", ww.BytesWritten(), "duration", time.Since(start))
			}
		})
	}
}
