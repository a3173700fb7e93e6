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
	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/nscaledev/uni-booker/pkg/openapi"
	"github.com/nscaledev/uni-booker/test/api"

	"k8s.io/utils/ptr"
)

var _ = Describe("Endpoints", func() {
	endpoints := api.NewEndpoints()

	It("should build booking paths", func() {
		Expect(endpoints.GetBooking(2)).To(Equal("/booking/2"))
		Expect(endpoints.UpdateBooking(1)).To(Equal("/booking/1"))
		Expect(endpoints.DeleteBooking(6)).To(Equal("/booking/6"))
	})

	DescribeTable("listing",
		func(params *openapi.ListBookingsParams, expected string) {
			Expect(endpoints.ListBookings(params)).To(Equal(expected))
		},
		Entry("without parameters", nil, "/booking"),
		Entry("with empty parameters", &openapi.ListBookingsParams{}, "/booking"),
		Entry("by name", &openapi.ListBookingsParams{Firstname: ptr.To("Sally"), Lastname: ptr.To("Brown")}, "/booking?firstname=Sally&lastname=Brown"),
		Entry("by dates", &openapi.ListBookingsParams{Checkin: ptr.To(openapi.Date("2021-01-01")), Checkout: ptr.To(openapi.Date("2022-01-01"))}, "/booking?checkin=2021-01-01&checkout=2022-01-01"),
		Entry("with escaping", &openapi.ListBookingsParams{Firstname: ptr.To("Mary Jane")}, "/booking?firstname=Mary+Jane"),
	)
})
