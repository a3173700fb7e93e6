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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/uni-booker/test/api"
)

var _ = Describe("Create Token [POST /auth]", func() {
	Context("When authenticating with the administrator credentials", func() {
		It("should issue a token", func() {
			token, err := client.CreateToken(ctx, api.DefaultCredentials())
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())
		})

		It("should issue a token usable as a cookie", func() {
			created := api.CreateBookingWithCleanup(client, ctx, api.NewBookingPayload().Build())

			session := api.Authenticate(client, ctx)

			authorizer, err := session.Authorizer(api.AuthCookie)
			Expect(err).NotTo(HaveOccurred())

			Expect(client.DeleteBooking(ctx, created.BookingID, authorizer)).To(Succeed())
		})
	})

	Context("When authenticating with bad credentials", func() {
		It("should not issue a token", func() {
			_, err := client.CreateToken(ctx, api.Credentials{
				Username: api.DefaultUsername,
				Password: "not-" + api.DefaultPassword,
			})
			Expect(err).To(MatchError(api.ErrMissingToken))
		})
	})
})

var _ = Describe("Health Check [GET /ping]", func() {
	It("should report the service is up", func() {
		Expect(client.HealthCheck(ctx)).To(Succeed())
	})
})
