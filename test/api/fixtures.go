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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"net/http"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/nscaledev/uni-booker/pkg/openapi"
)

// CreateBookingWithCleanup creates a booking and schedules its deletion.  The
// deletion tolerates the booking having already gone, e.g. when the spec
// deleted it.
func CreateBookingWithCleanup(client *APIClient, ctx context.Context, booking openapi.Booking) *openapi.CreatedBooking {
	GinkgoHelper()

	created, err := client.CreateBooking(ctx, booking)
	Expect(err).NotTo(HaveOccurred())
	Expect(created.BookingID).To(BeNumerically(">", 0))

	bookingID := created.BookingID

	GinkgoWriter.Printf("Created booking with ID: %d\n", bookingID)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func(ctx context.Context) {
		GinkgoWriter.Printf("Cleaning up booking: %d\n", bookingID)

		err := client.DeleteBooking(ctx, bookingID, NewHeaderAuthorizer(DefaultCredentials()))

		switch {
		case err == nil:
			GinkgoWriter.Printf("Successfully deleted booking: %d\n", bookingID)
		case isGone(err):
			GinkgoWriter.Printf("Booking %d already deleted\n", bookingID)
		default:
			GinkgoWriter.Printf("Warning: Failed to delete booking %d: %v\n", bookingID, err)
		}
	})

	return created
}

// isGone reports whether a mutation failed because the booking does not
// exist.  The service answers 405 rather than 404 in that case.
func isGone(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}

	status := StatusCode(err)

	return status == http.StatusNotFound || status == http.StatusMethodNotAllowed
}

// VerifyBookingIDsPositive verifies every listed booking ID is a positive integer.
func VerifyBookingIDsPositive(ids []openapi.BookingID) {
	GinkgoHelper()

	Expect(ids).NotTo(BeNil())
	Expect(ids).To(HaveEach(HaveField("BookingID", BeNumerically(">", 0))))
}

// ExtractBookingIDs extracts booking IDs from a list response.
func ExtractBookingIDs(ids []openapi.BookingID) []int {
	out := make([]int, len(ids))

	for i, id := range ids {
		out[i] = id.BookingID
	}

	return out
}

// AddedBookingIDs returns the IDs present after but not before, sorted.
func AddedBookingIDs(before, after []openapi.BookingID) []int {
	added := set.New[int](ExtractBookingIDs(after)...).Difference(set.New[int](ExtractBookingIDs(before)...))

	ids := slices.Collect(added.All())
	slices.Sort(ids)

	return ids
}

// VerifyBookingDeleted verifies a deleted booking can no longer be read.
func VerifyBookingDeleted(client *APIClient, ctx context.Context, bookingID int) {
	GinkgoHelper()

	_, err := client.GetBooking(ctx, bookingID)
	Expect(err).To(MatchError(ErrNotFound))
}
