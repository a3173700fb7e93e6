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
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nscaledev/uni-booker/test/api"
)

var _ = Describe("Delete Booking [DELETE /booking/:id]", func() {
	Context("When deleting a booking created by the test", func() {
		DescribeTable("should no longer be readable",
			func(mode api.AuthMode) {
				created := api.CreateBookingWithCleanup(client, ctx, api.NewBookingPayload().Build())

				Expect(client.DeleteBooking(ctx, created.BookingID, api.AuthorizeAs(client, ctx, mode))).To(Succeed())

				api.VerifyBookingDeleted(client, ctx, created.BookingID)
			},
			Entry("with an authorization header", api.AuthHeader),
			Entry("with an authorization cookie", api.AuthCookie),
		)
	})

	Context("When deleting a seeded booking", Label("fixture"), func() {
		DescribeTable("should no longer be readable",
			func(bookingID int, mode api.AuthMode) {
				Expect(client.DeleteBooking(ctx, bookingID, api.AuthorizeAs(client, ctx, mode))).To(Succeed())

				api.VerifyBookingDeleted(client, ctx, bookingID)
			},
			Entry("booking 6 with an authorization header", 6, api.AuthHeader),
			Entry("booking 7 with an authorization cookie", 7, api.AuthCookie),
		)
	})

	Context("When the request is not authorized", func() {
		It("should be forbidden and leave the booking in place", func() {
			created := api.CreateBookingWithCleanup(client, ctx, api.NewBookingPayload().Build())

			err := client.DeleteBooking(ctx, created.BookingID, nil)
			Expect(err).To(MatchError(api.ErrUnexpectedStatus))
			Expect(api.StatusCode(err)).To(Equal(http.StatusForbidden))

			_, err = client.GetBooking(ctx, created.BookingID)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
