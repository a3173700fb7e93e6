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

// Package store holds the state of the booking twin: bookings in insertion
// order and the session tokens that have been issued.
package store

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/nscaledev/uni-booker/pkg/openapi"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound    = errors.New("booking not found")
	ErrInvalidSeed = errors.New("invalid seed data")
)

//go:embed seed.yaml
var defaultSeed []byte

// tokenLength matches the length of tokens handed out by the real service.
const tokenLength = 15

type seedRecord struct {
	ID              int `yaml:"id"`
	openapi.Booking `yaml:",inline"`
}

type seedFile struct {
	Bookings []seedRecord `yaml:"bookings"`
}

// Store is a thread safe, in-memory booking store.
type Store struct {
	mu       sync.RWMutex
	bookings map[int]openapi.Booking
	order    []int
	nextID   int
	tokens   map[string]struct{}
	seed     []seedRecord
}

// New returns a store populated with the built in seed data.
func New() (*Store, error) {
	return NewFromSeed(defaultSeed)
}

// NewFromSeed returns a store populated from a YAML seed document.
func NewFromSeed(data []byte) (*Store, error) {
	var seed seedFile

	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	seen := map[int]bool{}

	for _, record := range seed.Bookings {
		if record.ID <= 0 {
			return nil, fmt.Errorf("%w: booking ID %d is not positive", ErrInvalidSeed, record.ID)
		}

		if seen[record.ID] {
			return nil, fmt.Errorf("%w: duplicate booking ID %d", ErrInvalidSeed, record.ID)
		}

		seen[record.ID] = true
	}

	s := &Store{
		seed: seed.Bookings,
	}

	s.Reset()

	return s, nil
}

// Reset discards all changes and issued tokens, restoring the seed data.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = make(map[int]openapi.Booking, len(s.seed))
	s.order = make([]int, 0, len(s.seed))
	s.tokens = map[string]struct{}{}
	s.nextID = 1

	for _, record := range s.seed {
		s.bookings[record.ID] = record.Booking.DeepCopy()
		s.order = append(s.order, record.ID)

		if record.ID >= s.nextID {
			s.nextID = record.ID + 1
		}
	}
}

// List returns the IDs of bookings that match the filter in insertion order.
func (s *Store) List(params *openapi.ListBookingsParams) ([]int, error) {
	match, err := newMatcher(params)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int, 0, len(s.order))

	for _, id := range s.order {
		if match(s.bookings[id]) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// Get returns a booking by ID.
func (s *Store) Get(id int) (openapi.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return openapi.Booking{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return booking.DeepCopy(), nil
}

// Create stores a new booking and returns its ID.
func (s *Store) Create(booking openapi.Booking) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	s.bookings[id] = booking.DeepCopy()
	s.order = append(s.order, id)

	return id
}

// Update applies a mutation to a copy of an existing booking under the write
// lock, storing and returning the result only if the mutation succeeds.
func (s *Store) Update(id int, mutate func(*openapi.Booking) error) (openapi.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return openapi.Booking{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	booking = booking.DeepCopy()

	if err := mutate(&booking); err != nil {
		return openapi.Booking{}, err
	}

	s.bookings[id] = booking.DeepCopy()

	return booking, nil
}

// Delete removes a booking.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookings[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	delete(s.bookings, id)

	s.order = slices.DeleteFunc(s.order, func(x int) bool {
		return x == id
	})

	return nil
}

// Snapshot returns a copy of all bookings keyed by ID.
func (s *Store) Snapshot() map[int]openapi.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int]openapi.Booking, len(s.bookings))

	for id, booking := range s.bookings {
		out[id] = booking.DeepCopy()
	}

	return out
}

// IssueToken creates and remembers a new session token.
func (s *Store) IssueToken() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:tokenLength]

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = struct{}{}

	return token
}

// ValidToken reports whether the token was issued since the last reset.
func (s *Store) ValidToken(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.tokens[token]

	return ok
}
