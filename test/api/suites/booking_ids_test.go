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

	"github.com/nscaledev/uni-booker/pkg/openapi"
	"github.com/nscaledev/uni-booker/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Get Booking IDs [GET /booking]", func() {
	Context("When listing all bookings", func() {
		It("should return the booking IDs", func() {
			ids, err := client.ListBookingIDs(ctx, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).NotTo(BeNil())
		})

		It("should include a newly created booking", func() {
			before, err := client.ListBookingIDs(ctx, nil)
			Expect(err).NotTo(HaveOccurred())

			created := api.CreateBookingWithCleanup(client, ctx, api.NewBookingPayload().Build())

			after, err := client.ListBookingIDs(ctx, nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(api.AddedBookingIDs(before, after)).To(ContainElement(created.BookingID))
		})
	})

	Context("When filtering by name", func() {
		It("should return positive booking IDs for Sally Brown", Label("fixture"), func() {
			ids, err := client.ListBookingIDs(ctx, &openapi.ListBookingsParams{
				Firstname: ptr.To("Sally"),
				Lastname:  ptr.To("Brown"),
			})
			Expect(err).NotTo(HaveOccurred())

			api.VerifyBookingIDsPositive(ids)
		})

		It("should return only the matching booking", func() {
			booking := api.NewBookingPayload().Build()
			created := api.CreateBookingWithCleanup(client, ctx, booking)

			ids, err := client.ListBookingIDs(ctx, &openapi.ListBookingsParams{
				Firstname: ptr.To(booking.Firstname),
				Lastname:  ptr.To(booking.Lastname),
			})
			Expect(err).NotTo(HaveOccurred())

			api.VerifyBookingIDsPositive(ids)
			Expect(api.ExtractBookingIDs(ids)).To(ConsistOf(created.BookingID))
		})

		It("should return nothing for an unknown guest", func() {
			ids, err := client.ListBookingIDs(ctx, &openapi.ListBookingsParams{
				Firstname: ptr.To(api.GenerateTestID()),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(BeEmpty())
		})
	})

	Context("When filtering by dates", func() {
		var (
			booking openapi.Booking
			created *openapi.CreatedBooking
		)

		BeforeEach(func() {
			booking = api.NewBookingPayload().
				WithDates("2031-03-01", "2031-03-05").
				Build()
			created = api.CreateBookingWithCleanup(client, ctx, booking)
		})

		DescribeTable("should select bookings by stay",
			func(params *openapi.ListBookingsParams, included bool) {
				filter := *params
				filter.Firstname = ptr.To(booking.Firstname)

				ids, err := client.ListBookingIDs(ctx, &filter)
				Expect(err).NotTo(HaveOccurred())

				if included {
					Expect(api.ExtractBookingIDs(ids)).To(ConsistOf(created.BookingID))
				} else {
					Expect(ids).To(BeEmpty())
				}
			},
			Entry("checking in before the check-in date", &openapi.ListBookingsParams{Checkin: ptr.To(openapi.Date("2031-02-01"))}, true),
			Entry("checking in after the check-in date", &openapi.ListBookingsParams{Checkin: ptr.To(openapi.Date("2031-03-02"))}, false),
			Entry("checking out after the check-out date", &openapi.ListBookingsParams{Checkout: ptr.To(openapi.Date("2031-04-01"))}, true),
			Entry("checking out before the check-out date", &openapi.ListBookingsParams{Checkout: ptr.To(openapi.Date("2031-03-04"))}, false),
		)
	})
})
