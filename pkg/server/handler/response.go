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
	"encoding/json"
	"net/http"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

func writeJSONResponse(w http.ResponseWriter, r *http.Request, code int, response any) {
	body, err := json.Marshal(response)
	if err != nil {
		log.FromContext(r.Context()).Error(err, "unable to marshal body")
		writeTextResponse(w, r, http.StatusInternalServerError)

		return
	}

	w.Header().Add("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write response")
	}
}

// writeTextResponse replies with the status text as the body, e.g. "Created"
// for a deletion.
func writeTextResponse(w http.ResponseWriter, r *http.Request, code int) {
	w.Header().Add("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)

	if _, err := w.Write([]byte(http.StatusText(code))); err != nil {
		log.FromContext(r.Context()).Error(err, "failed to write response")
	}
}
