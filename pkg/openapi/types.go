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

package openapi

// BookingDates is the stay of a booking.  Check-in is expected to precede
// check-out, but that is the service's business, not ours.
type BookingDates struct {
	Checkin  Date `json:"checkin" yaml:"checkin"`
	Checkout Date `json:"checkout" yaml:"checkout"`
}

// Booking is a booking record as read and written by the booking API.
type Booking struct {
	Firstname       string       `json:"firstname" yaml:"firstname"`
	Lastname        string       `json:"lastname" yaml:"lastname"`
	TotalPrice      int          `json:"totalprice" yaml:"totalprice"`
	DepositPaid     bool         `json:"depositpaid" yaml:"depositpaid"`
	BookingDates    BookingDates `json:"bookingdates" yaml:"bookingdates"`
	AdditionalNeeds *string      `json:"additionalneeds,omitempty" yaml:"additionalneeds,omitempty"`
}

// BookingID is an element of a booking list response.
type BookingID struct {
	BookingID int `json:"bookingid"`
}

// CreatedBooking is returned when a booking is created.
type CreatedBooking struct {
	BookingID int     `json:"bookingid"`
	Booking   Booking `json:"booking"`
}

// TokenRequest is the body of an authentication request.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the body of an authentication response.  The service
// reports bad credentials with a reason and a 200, not a 4xx.
type TokenResponse struct {
	Token  string `json:"token,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// ListBookingsParams are the optional filters of a booking list.
type ListBookingsParams struct {
	Firstname *string
	Lastname  *string
	Checkin   *Date
	Checkout  *Date
}

// BookingDatesPatch is a partial stay, only set fields are changed.
type BookingDatesPatch struct {
	Checkin  *Date `json:"checkin,omitempty"`
	Checkout *Date `json:"checkout,omitempty"`
}

// BookingPatch is a partial booking update.
type BookingPatch struct {
	Firstname       *string            `json:"firstname,omitempty"`
	Lastname        *string            `json:"lastname,omitempty"`
	TotalPrice      *int               `json:"totalprice,omitempty"`
	DepositPaid     *bool              `json:"depositpaid,omitempty"`
	BookingDates    *BookingDatesPatch `json:"bookingdates,omitempty"`
	AdditionalNeeds *string            `json:"additionalneeds,omitempty"`
}

// DeepCopy returns a copy of the booking that shares no pointers with the
// original.
func (b Booking) DeepCopy() Booking {
	out := b

	if b.AdditionalNeeds != nil {
		needs := *b.AdditionalNeeds
		out.AdditionalNeeds = &needs
	}

	return out
}

// Apply merges the fields set in the patch into the booking.
func (p *BookingPatch) Apply(booking *Booking) {
	if p.Firstname != nil {
		booking.Firstname = *p.Firstname
	}

	if p.Lastname != nil {
		booking.Lastname = *p.Lastname
	}

	if p.TotalPrice != nil {
		booking.TotalPrice = *p.TotalPrice
	}

	if p.DepositPaid != nil {
		booking.DepositPaid = *p.DepositPaid
	}

	if p.BookingDates != nil {
		if p.BookingDates.Checkin != nil {
			booking.BookingDates.Checkin = *p.BookingDates.Checkin
		}

		if p.BookingDates.Checkout != nil {
			booking.BookingDates.Checkout = *p.BookingDates.Checkout
		}
	}

	if p.AdditionalNeeds != nil {
		needs := *p.AdditionalNeeds
		booking.AdditionalNeeds = &needs
	}
}
