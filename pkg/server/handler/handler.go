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

//nolint:revive
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nscaledev/uni-booker/pkg/openapi"
	"github.com/nscaledev/uni-booker/pkg/store"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

type Handler struct {
	// store holds bookings and issued tokens.
	store *store.Store

	// options allows behaviour to be defined on the CLI.
	options *Options
}

func New(store *store.Store, options *Options) (*Handler, error) {
	h := &Handler{
		store:   store,
		options: options,
	}

	return h, nil
}

// Routes mounts the booking API and the twin's admin endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/ping", h.GetPing)
	r.Post("/auth", h.PostAuth)

	r.Get("/booking", h.GetBooking)
	r.Post("/booking", h.PostBooking)
	r.Get("/booking/{bookingID}", h.GetBookingBookingID)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuthorization)

		r.Put("/booking/{bookingID}", h.PutBookingBookingID)
		r.Patch("/booking/{bookingID}", h.PatchBookingBookingID)
		r.Delete("/booking/{bookingID}", h.DeleteBookingBookingID)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Get("/health", h.GetAdminHealth)
		r.Get("/state", h.GetAdminState)
		r.Post("/reset", h.PostAdminReset)
	})
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

// bookingID returns the path booking ID, if it is well formed.
func bookingID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "bookingID"))
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// readBody reads a request body and checks it against a schema.
func readBody(r *http.Request, schema string) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	if err := openapi.ValidateJSON(schema, body); err != nil {
		return nil, err
	}

	return body, nil
}

func (h *Handler) GetPing(w http.ResponseWriter, r *http.Request) {
	writeTextResponse(w, r, http.StatusCreated)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := &openapi.ListBookingsParams{}

	if query.Has("firstname") {
		value := query.Get("firstname")
		params.Firstname = &value
	}

	if query.Has("lastname") {
		value := query.Get("lastname")
		params.Lastname = &value
	}

	if query.Has("checkin") {
		value := openapi.Date(query.Get("checkin"))
		params.Checkin = &value
	}

	if query.Has("checkout") {
		value := openapi.Date(query.Get("checkout"))
		params.Checkout = &value
	}

	ids, err := h.store.List(params)
	if err != nil {
		log.FromContext(r.Context()).Info("rejecting list filter", "error", err.Error())
		writeTextResponse(w, r, http.StatusInternalServerError)

		return
	}

	result := make([]openapi.BookingID, len(ids))

	for i, id := range ids {
		result[i] = openapi.BookingID{BookingID: id}
	}

	h.setUncacheable(w)
	writeJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostBooking(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r, openapi.SchemaBooking)
	if err != nil {
		log.FromContext(r.Context()).Info("rejecting booking", "error", err.Error())
		writeTextResponse(w, r, http.StatusInternalServerError)

		return
	}

	var booking openapi.Booking

	if err := json.Unmarshal(body, &booking); err != nil {
		log.FromContext(r.Context()).Info("rejecting booking", "error", err.Error())
		writeTextResponse(w, r, http.StatusInternalServerError)

		return
	}

	result := &openapi.CreatedBooking{
		BookingID: h.store.Create(booking),
		Booking:   booking,
	}

	writeJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) GetBookingBookingID(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeTextResponse(w, r, http.StatusNotFound)
		return
	}

	booking, err := h.store.Get(id)
	if err != nil {
		writeTextResponse(w, r, http.StatusNotFound)
		return
	}

	h.setUncacheable(w)
	writeJSONResponse(w, r, http.StatusOK, booking)
}

func (h *Handler) PutBookingBookingID(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeTextResponse(w, r, http.StatusMethodNotAllowed)
		return
	}

	body, err := readBody(r, openapi.SchemaBooking)
	if err != nil {
		log.FromContext(r.Context()).Info("rejecting booking", "id", id, "error", err.Error())
		writeTextResponse(w, r, http.StatusBadRequest)

		return
	}

	var replacement openapi.Booking

	if err := json.Unmarshal(body, &replacement); err != nil {
		writeTextResponse(w, r, http.StatusBadRequest)
		return
	}

	result, err := h.store.Update(id, func(b *openapi.Booking) error {
		*b = replacement
		return nil
	})

	h.writeUpdateResponse(w, r, result, err)
}

func (h *Handler) PatchBookingBookingID(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeTextResponse(w, r, http.StatusMethodNotAllowed)
		return
	}

	body, err := readBody(r, openapi.SchemaBookingPatch)
	if err != nil {
		log.FromContext(r.Context()).Info("rejecting booking patch", "id", id, "error", err.Error())
		writeTextResponse(w, r, http.StatusBadRequest)

		return
	}

	var patch openapi.BookingPatch

	if err := json.Unmarshal(body, &patch); err != nil {
		writeTextResponse(w, r, http.StatusBadRequest)
		return
	}

	result, err := h.store.Update(id, func(b *openapi.Booking) error {
		patch.Apply(b)
		return nil
	})

	h.writeUpdateResponse(w, r, result, err)
}

func (h *Handler) writeUpdateResponse(w http.ResponseWriter, r *http.Request, result openapi.Booking, err error) {
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeTextResponse(w, r, http.StatusMethodNotAllowed)
			return
		}

		writeTextResponse(w, r, http.StatusBadRequest)

		return
	}

	writeJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) DeleteBookingBookingID(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(r)
	if !ok {
		writeTextResponse(w, r, http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.Delete(id); err != nil {
		writeTextResponse(w, r, http.StatusMethodNotAllowed)
		return
	}

	writeTextResponse(w, r, http.StatusCreated)
}
