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

// Package api provides integration test utilities for the booking API.
//
// # Separate Client Implementation
//
// This package intentionally maintains its own HTTP client (APIClient)
// rather than a generated one.  Any legitimate change to the booking API
// must have a compensating change here, which makes API evolution explicit
// and reviewable.  Every booking body the client reads is checked against
// the OpenAPI document embedded in pkg/openapi, so a response that drifts
// from the documented shape fails the spec that read it.
//
// The client also carries features tailored for integration testing:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Pluggable authorization: basic auth or a session token cookie
//   - Direct access to HTTP status codes via StatusError
//
// # Hermetic Runs
//
// When API_BASE_URL is not set the suites start an in-process twin of the
// booking API (see StartTwin) and reset it before every spec, so the seeded
// fixture specs are deterministic.  Against a remote service, specs labelled
// "fixture" depend on that service's seed data and can be filtered out with
// --label-filter='!fixture'.
package api
