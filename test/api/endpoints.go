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
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/nscaledev/uni-booker/pkg/openapi"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// pathParameter styles a path parameter as the generated clients do.
func pathParameter(name string, value any) string {
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		panic(fmt.Errorf("styling path parameter %s: %w", name, err))
	}

	return styled
}

// addQueryParameter styles and adds a query parameter.
func addQueryParameter(values url.Values, name string, value any) {
	fragment, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		panic(fmt.Errorf("styling query parameter %s: %w", name, err))
	}

	parsed, err := url.ParseQuery(fragment)
	if err != nil {
		panic(fmt.Errorf("parsing query parameter %s: %w", name, err))
	}

	for k, v := range parsed {
		for _, vv := range v {
			values.Add(k, vv)
		}
	}
}

// Health endpoints.
func (e *Endpoints) Ping() string {
	return "/ping"
}

// Authentication endpoints.
func (e *Endpoints) CreateToken() string {
	return "/auth"
}

// Booking endpoints.
func (e *Endpoints) ListBookings(params *openapi.ListBookingsParams) string {
	if params == nil {
		return "/booking"
	}

	values := url.Values{}

	if params.Firstname != nil {
		addQueryParameter(values, "firstname", *params.Firstname)
	}

	if params.Lastname != nil {
		addQueryParameter(values, "lastname", *params.Lastname)
	}

	if params.Checkin != nil {
		addQueryParameter(values, "checkin", string(*params.Checkin))
	}

	if params.Checkout != nil {
		addQueryParameter(values, "checkout", string(*params.Checkout))
	}

	if len(values) == 0 {
		return "/booking"
	}

	return "/booking?" + values.Encode()
}

func (e *Endpoints) CreateBooking() string {
	return "/booking"
}

func (e *Endpoints) GetBooking(bookingID int) string {
	return fmt.Sprintf("/booking/%s", pathParameter("bookingID", bookingID))
}

func (e *Endpoints) UpdateBooking(bookingID int) string {
	return fmt.Sprintf("/booking/%s", pathParameter("bookingID", bookingID))
}

func (e *Endpoints) DeleteBooking(bookingID int) string {
	return fmt.Sprintf("/booking/%s", pathParameter("bookingID", bookingID))
}

// Twin administration endpoints.
func (e *Endpoints) ResetTwin() string {
	return "/admin/reset"
}
