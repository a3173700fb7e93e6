/*
Copyright 2024-2025 the Unikorn Authors.
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
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/nscaledev/uni-booker/pkg/openapi"

	"k8s.io/utils/ptr"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// BookingPayloadBuilder builds booking payloads for testing.
type BookingPayloadBuilder struct {
	booking openapi.Booking
}

// NewBookingPayload creates a new booking payload builder.  The first name is
// unique so the booking can be found by filtering.
func NewBookingPayload() *BookingPayloadBuilder {
	return &BookingPayloadBuilder{
		booking: openapi.Booking{
			Firstname:   GenerateTestID(),
			Lastname:    "Automation",
			TotalPrice:  111,
			DepositPaid: true,
			BookingDates: openapi.BookingDates{
				Checkin:  "2018-01-01",
				Checkout: "2019-01-01",
			},
			AdditionalNeeds: ptr.To("Breakfast"),
		},
	}
}

// WithName sets the guest's name.
func (b *BookingPayloadBuilder) WithName(firstname, lastname string) *BookingPayloadBuilder {
	b.booking.Firstname = firstname
	b.booking.Lastname = lastname

	return b
}

// WithTotalPrice sets the price.
func (b *BookingPayloadBuilder) WithTotalPrice(price int) *BookingPayloadBuilder {
	b.booking.TotalPrice = price
	return b
}

// WithDepositPaid sets whether the deposit is paid.
func (b *BookingPayloadBuilder) WithDepositPaid(paid bool) *BookingPayloadBuilder {
	b.booking.DepositPaid = paid
	return b
}

// WithDates sets the stay.
func (b *BookingPayloadBuilder) WithDates(checkin, checkout openapi.Date) *BookingPayloadBuilder {
	b.booking.BookingDates = openapi.BookingDates{
		Checkin:  checkin,
		Checkout: checkout,
	}

	return b
}

// WithAdditionalNeeds sets additional needs (pass empty string to omit).
func (b *BookingPayloadBuilder) WithAdditionalNeeds(needs string) *BookingPayloadBuilder {
	if needs == "" {
		b.booking.AdditionalNeeds = nil
	} else {
		b.booking.AdditionalNeeds = ptr.To(needs)
	}

	return b
}

// Build returns the completed booking payload.
func (b *BookingPayloadBuilder) Build() openapi.Booking {
	return b.booking
}

// JimBrown is the booking created by the creation scenario.
func JimBrown() openapi.Booking {
	return NewBookingPayload().
		WithName("Jim", "Brown").
		WithTotalPrice(111).
		WithDepositPaid(true).
		WithDates("2018-01-01", "2019-01-01").
		WithAdditionalNeeds("Breakfast").
		Build()
}

// SallyBrown is seeded as booking 2.
func SallyBrown() openapi.Booking {
	return NewBookingPayload().
		WithName("Sally", "Brown").
		WithTotalPrice(897).
		WithDepositPaid(true).
		WithDates("2020-05-21", "2020-09-27").
		WithAdditionalNeeds("Breakfast").
		Build()
}

// LukeSkywalker replaces booking 1 in the header update scenario.
func LukeSkywalker() openapi.Booking {
	return NewBookingPayload().
		WithName("Luke", "Skywalker").
		WithTotalPrice(205).
		WithDepositPaid(true).
		WithDates("2024-02-23", "2024-02-26").
		WithAdditionalNeeds("Extra Towels").
		Build()
}

// HanSolo replaces booking 2 in the cookie update scenario.
func HanSolo() openapi.Booking {
	return NewBookingPayload().
		WithName("Han", "Solo").
		WithTotalPrice(190).
		WithDepositPaid(true).
		WithDates("2024-02-18", "2024-02-19").
		WithAdditionalNeeds("DO NOT DISTURB").
		Build()
}
