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

package api

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

import (
	"context"
	"net/http"
)

// Authorizer attaches credentials to an outbound request.
type Authorizer interface {
	Authorize(req *http.Request)
}

// TokenSource issues session tokens.
type TokenSource interface {
	CreateToken(ctx context.Context, credentials Credentials) (string, error)
}
