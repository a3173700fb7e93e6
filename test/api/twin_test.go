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

package api_test

import (
	"context"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/nscaledev/uni-booker/test/api"
)

var _ = Describe("Twin", func() {
	var (
		client *api.APIClient
		ctx    context.Context
	)

	BeforeEach(func() {
		config := &api.TestConfig{
			AuthMode:       api.AuthHeader,
			RequestTimeout: 5 * time.Second,
		}

		twin, err := api.StartTwin(config)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(twin.Close)

		config.BaseURL = twin.URL()

		client = api.NewAPIClientWithConfig(config)
		ctx = context.Background()
	})

	It("should answer health checks", func() {
		Expect(client.HealthCheck(ctx)).To(Succeed())
	})

	It("should restore seed data on reset", func() {
		Expect(client.DeleteBooking(ctx, 6, api.AuthorizeAs(client, ctx, api.AuthCookie))).To(Succeed())
		api.VerifyBookingDeleted(client, ctx, 6)

		Expect(client.ResetTwin(ctx)).To(Succeed())

		_, err := client.GetBooking(ctx, 6)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should revoke tokens on reset", func() {
		authorizer := api.AuthorizeAs(client, ctx, api.AuthCookie)

		Expect(client.ResetTwin(ctx)).To(Succeed())

		err := client.DeleteBooking(ctx, 7, authorizer)
		Expect(api.StatusCode(err)).To(Equal(http.StatusForbidden))
	})
})
