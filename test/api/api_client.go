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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/nscaledev/uni-booker/pkg/openapi"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrNotFound         = errors.New("booking not found")
)

// StatusError is returned when the service responds with a status other
// than the one expected.
type StatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// StatusCode returns the actual status carried by a StatusError anywhere in
// the chain, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError

	if errors.As(err, &statusErr) {
		return statusErr.Actual
	}

	return 0
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClient(baseURL string) (*APIClient, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = config.BaseURL
	}

	return newAPIClientWithConfig(config, baseURL), nil
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// jsonBody encodes a request body.
func jsonBody(v any) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(data), nil
}

// decodeBody checks a response body against a schema and decodes it.
func decodeBody(schema string, data []byte, out any) error {
	if err := openapi.ValidateJSON(schema, data); err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshaling %s response: %w", schema, err)
	}

	return nil
}

// doRequest issues a request, attaching the authorizer's credentials if one is
// given.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, authorizer Authorizer, expectedStatus int) (*http.Response, []byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")
	req.Header.Set("Accept", "application/json")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if authorizer != nil {
		authorizer.Authorize(req)
	}

	if c.config.DebugLogging {
		ginkgo.GinkgoWriter.Printf("[%s %s] request headers: %v\n", method, path, req.Header)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	if resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)

		return resp, respBody, &StatusError{
			Method:   method,
			Path:     path,
			Expected: expectedStatus,
			Actual:   resp.StatusCode,
			Body:     string(respBody),
			TraceID:  extractTraceID(traceParent),
		}
	}

	return resp, respBody, nil
}

// HealthCheck pings the service.
func (c *APIClient) HealthCheck(ctx context.Context) error {
	//nolint:bodyclose // response body is closed in doRequest
	if _, _, err := c.doRequest(ctx, http.MethodGet, c.endpoints.Ping(), nil, nil, http.StatusCreated); err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	return nil
}

// CreateToken exchanges credentials for a session token.  The service
// reports bad credentials in a successful response, so a missing token is
// an error in its own right.
func (c *APIClient) CreateToken(ctx context.Context, credentials Credentials) (string, error) {
	body, err := jsonBody(&openapi.TokenRequest{
		Username: credentials.Username,
		Password: credentials.Password,
	})
	if err != nil {
		return "", err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateToken(), body, nil, http.StatusOK)
	if err != nil {
		return "", fmt.Errorf("creating token: %w", err)
	}

	var response openapi.TokenResponse

	if err := decodeBody(openapi.SchemaTokenResponse, respBody, &response); err != nil {
		return "", fmt.Errorf("creating token: %w", err)
	}

	if response.Token == "" {
		if response.Reason != "" {
			return "", fmt.Errorf("%w: %s", ErrMissingToken, response.Reason)
		}

		return "", ErrMissingToken
	}

	return response.Token, nil
}

// ListBookingIDs lists booking IDs, optionally filtered.
func (c *APIClient) ListBookingIDs(ctx context.Context, params *openapi.ListBookingsParams) ([]openapi.BookingID, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListBookings(params), nil, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}

	var ids []openapi.BookingID

	if err := decodeBody(openapi.SchemaBookingIDs, respBody, &ids); err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}

	return ids, nil
}

// GetBooking reads a booking, returning ErrNotFound if it does not exist.
func (c *APIClient) GetBooking(ctx context.Context, bookingID int) (*openapi.Booking, error) {
	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodGet, c.endpoints.GetBooking(bookingID), nil, nil, http.StatusOK)
	if err != nil {
		if StatusCode(err) == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %d", ErrNotFound, bookingID)
		}

		return nil, fmt.Errorf("getting booking %d: %w", bookingID, err)
	}

	var booking openapi.Booking

	if err := decodeBody(openapi.SchemaBooking, respBody, &booking); err != nil {
		return nil, fmt.Errorf("getting booking %d: %w", bookingID, err)
	}

	return &booking, nil
}

// CreateBooking creates a booking.  No authorization is required.
func (c *APIClient) CreateBooking(ctx context.Context, booking openapi.Booking) (*openapi.CreatedBooking, error) {
	body, err := jsonBody(booking)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateBooking(), body, nil, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	var created openapi.CreatedBooking

	if err := decodeBody(openapi.SchemaCreatedBooking, respBody, &created); err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	return &created, nil
}

// UpdateBooking replaces a booking.
func (c *APIClient) UpdateBooking(ctx context.Context, bookingID int, booking openapi.Booking, authorizer Authorizer) (*openapi.Booking, error) {
	body, err := jsonBody(booking)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPut, c.endpoints.UpdateBooking(bookingID), body, authorizer, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("updating booking %d: %w", bookingID, err)
	}

	var updated openapi.Booking

	if err := decodeBody(openapi.SchemaBooking, respBody, &updated); err != nil {
		return nil, fmt.Errorf("updating booking %d: %w", bookingID, err)
	}

	return &updated, nil
}

// PartialUpdateBooking changes only the fields set in the patch.
func (c *APIClient) PartialUpdateBooking(ctx context.Context, bookingID int, patch openapi.BookingPatch, authorizer Authorizer) (*openapi.Booking, error) {
	body, err := jsonBody(patch)
	if err != nil {
		return nil, err
	}

	//nolint:bodyclose // response body is closed in doRequest
	_, respBody, err := c.doRequest(ctx, http.MethodPatch, c.endpoints.UpdateBooking(bookingID), body, authorizer, http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("patching booking %d: %w", bookingID, err)
	}

	var updated openapi.Booking

	if err := decodeBody(openapi.SchemaBooking, respBody, &updated); err != nil {
		return nil, fmt.Errorf("patching booking %d: %w", bookingID, err)
	}

	return &updated, nil
}

// DeleteBooking deletes a booking.  The service answers 201.
func (c *APIClient) DeleteBooking(ctx context.Context, bookingID int, authorizer Authorizer) error {
	//nolint:bodyclose // response body is closed in doRequest
	_, _, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeleteBooking(bookingID), nil, authorizer, http.StatusCreated)
	if err != nil {
		return fmt.Errorf("deleting booking %d: %w", bookingID, err)
	}

	return nil
}

// ResetTwin restores the in-process twin's seed data.  Remote services
// do not implement this.
func (c *APIClient) ResetTwin(ctx context.Context) error {
	//nolint:bodyclose // response body is closed in doRequest
	if _, _, err := c.doRequest(ctx, http.MethodPost, c.endpoints.ResetTwin(), nil, nil, http.StatusOK); err != nil {
		return fmt.Errorf("resetting twin: %w", err)
	}

	return nil
}
