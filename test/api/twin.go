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

package api

import (
	"context"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"

	"github.com/nscaledev/uni-booker/pkg/server"
	"github.com/nscaledev/uni-booker/pkg/server/handler"
	"github.com/nscaledev/uni-booker/pkg/store"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Twin is an in-process booking API for hermetic runs.
type Twin struct {
	server *httptest.Server
}

// StartTwin starts a twin with the built in seed data.  Twin logs go to the
// GinkgoWriter.
func StartTwin(config *TestConfig) (*Twin, error) {
	bookings, err := store.New()
	if err != nil {
		return nil, err
	}

	ctx := log.IntoContext(context.Background(), ginkgo.GinkgoLogr.WithName("twin"))

	router, err := server.NewRouter(ctx, bookings, handler.NewOptions(), config.LogRequests)
	if err != nil {
		return nil, err
	}

	twin := &Twin{
		server: httptest.NewServer(router),
	}

	return twin, nil
}

// URL is the twin's base URL.
func (t *Twin) URL() string {
	return t.server.URL
}

func (t *Twin) Close() {
	t.server.Close()
}
