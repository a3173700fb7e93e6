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

package openapi

import (
	"errors"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date: must be an ISO calendar date of the form YYYY-MM-DD")

var dateValidationRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date is an ISO calendar date as used by booking check-in and check-out.
// The textual form is kept verbatim so payloads echo back exactly.
type Date string

func (d *Date) UnmarshalText(text []byte) error {
	if !dateValidationRegex.Match(text) {
		return ErrInvalidDate
	}

	if _, err := time.Parse(dateLayout, string(text)); err != nil {
		return ErrInvalidDate
	}

	*d = Date(text)

	return nil
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d), nil
}

// Time returns the date as midnight UTC.
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

// DateFromTime formats a time as a booking date.
func DateFromTime(t time.Time) Date {
	return Date(t.Format(dateLayout))
}
