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

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Component schema names.
const (
	SchemaBooking        = "booking"
	SchemaBookingPatch   = "bookingPatch"
	SchemaBookingIDs     = "bookingIDs"
	SchemaCreatedBooking = "createdBooking"
	SchemaTokenResponse  = "tokenResponse"
)

var (
	ErrSchemaMismatch = errors.New("payload does not match schema")
	ErrUnknownSchema  = errors.New("unknown schema")
)

//go:embed server.spec.yaml
var spec []byte

//nolint:gochecknoglobals
var (
	schemaOnce sync.Once
	schema     *openapi3.T
	schemaErr  error
)

// Spec returns the raw OpenAPI document.
func Spec() []byte {
	return spec
}

// Schema returns the parsed and validated OpenAPI document.
func Schema() (*openapi3.T, error) {
	schemaOnce.Do(func() {
		loader := openapi3.NewLoader()

		doc, err := loader.LoadFromData(spec)
		if err != nil {
			schemaErr = fmt.Errorf("loading openapi document: %w", err)
			return
		}

		if err := doc.Validate(context.Background()); err != nil {
			schemaErr = fmt.Errorf("validating openapi document: %w", err)
			return
		}

		schema = doc
	})

	return schema, schemaErr
}

// Validate checks a decoded JSON value against a named component schema.
// Properties the schema does not mention are allowed.
func Validate(name string, value interface{}) error {
	doc, err := Schema()
	if err != nil {
		return err
	}

	ref, ok := doc.Components.Schemas[name]
	if !ok || ref.Value == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}

	if err := ref.Value.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSchemaMismatch, name, err)
	}

	return nil
}

// ValidateJSON checks a raw JSON document against a named component schema.
func ValidateJSON(name string, data []byte) error {
	var value interface{}

	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSchemaMismatch, name, err)
	}

	return Validate(name, value)
}
