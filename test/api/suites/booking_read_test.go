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

var _ = Describe("Get Booking [GET /booking/:id]", func() {
	Context("When reading a seeded booking", func() {
		It("should return Sally Brown's booking exactly", Label("fixture"), func() {
			booking, err := client.GetBooking(ctx, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(*booking).To(Equal(api.SallyBrown()))
		})
	})

	Context("When reading a booking created by the test", func() {
		It("should return the submitted record", func() {
			payload := api.NewBookingPayload().
				WithTotalPrice(897).
				WithDates("2020-05-21", "2020-09-27").
				Build()

			created := api.CreateBookingWithCleanup(client, ctx, payload)

			booking, err := client.GetBooking(ctx, created.BookingID)
			Expect(err).NotTo(HaveOccurred())
			Expect(booking).To(api.MatchJSONSubset(payload))
		})

		It("should omit additional needs that were never requested", func() {
			created := api.CreateBookingWithCleanup(client, ctx, api.NewBookingPayload().WithAdditionalNeeds("").Build())

			booking, err := client.GetBooking(ctx, created.BookingID)
			Expect(err).NotTo(HaveOccurred())
			Expect(booking.AdditionalNeeds).To(BeNil())
		})
	})

	Context("When reading a booking that does not exist", func() {
		It("should report not found", func() {
			created := api.CreateBookingWithCleanup(client, ctx, api.NewBookingPayload().Build())

			Expect(client.DeleteBooking(ctx, created.BookingID, api.NewHeaderAuthorizer(api.DefaultCredentials()))).To(Succeed())

			api.VerifyBookingDeleted(client, ctx, created.BookingID)
		})
	})
})
