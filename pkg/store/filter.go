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

package store

import (
	"github.com/nscaledev/uni-booker/pkg/openapi"
)

type predicate func(openapi.Booking) bool

// newMatcher builds a predicate from list parameters.  Names match exactly,
// check-in selects stays starting on or after the date, check-out selects
// stays ending on or before it.
func newMatcher(params *openapi.ListBookingsParams) (predicate, error) {
	var predicates []predicate

	if params == nil {
		params = &openapi.ListBookingsParams{}
	}

	if params.Firstname != nil {
		firstname := *params.Firstname

		predicates = append(predicates, func(b openapi.Booking) bool {
			return b.Firstname == firstname
		})
	}

	if params.Lastname != nil {
		lastname := *params.Lastname

		predicates = append(predicates, func(b openapi.Booking) bool {
			return b.Lastname == lastname
		})
	}

	if params.Checkin != nil {
		checkin, err := params.Checkin.Time()
		if err != nil {
			return nil, err
		}

		predicates = append(predicates, func(b openapi.Booking) bool {
			t, err := b.BookingDates.Checkin.Time()

			return err == nil && !t.Before(checkin)
		})
	}

	if params.Checkout != nil {
		checkout, err := params.Checkout.Time()
		if err != nil {
			return nil, err
		}

		predicates = append(predicates, func(b openapi.Booking) bool {
			t, err := b.BookingDates.Checkout.Time()

			return err == nil && !t.After(checkout)
		})
	}

	return func(b openapi.Booking) bool {
		for _, p := range predicates {
			if !p(b) {
				return false
			}
		}

		return true
	}, nil
}
