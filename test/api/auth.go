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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// AuthMode selects how a session is attached to requests.
type AuthMode string

const (
	// AuthHeader sends the session credentials as basic auth.
	AuthHeader AuthMode = "header"

	// AuthCookie sends the session token as the token cookie.
	AuthCookie AuthMode = "cookie"
)

const (
	DefaultUsername = "admin"
	DefaultPassword = "password123"

	tokenCookie = "token"
)

var ErrMissingToken = errors.New("authentication response carries no token")

// Credentials are exchanged for a session token.
type Credentials struct {
	Username string
	Password string
}

// DefaultCredentials are the fixed administrator credentials.
func DefaultCredentials() Credentials {
	return Credentials{
		Username: DefaultUsername,
		Password: DefaultPassword,
	}
}

type headerAuthorizer struct {
	credentials Credentials
}

func (a *headerAuthorizer) Authorize(req *http.Request) {
	req.SetBasicAuth(a.credentials.Username, a.credentials.Password)
}

// NewHeaderAuthorizer authorizes with an Authorization header.
func NewHeaderAuthorizer(credentials Credentials) Authorizer {
	return &headerAuthorizer{
		credentials: credentials,
	}
}

type cookieAuthorizer struct {
	token string
}

func (a *cookieAuthorizer) Authorize(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: tokenCookie, Value: a.token})
}

// NewCookieAuthorizer authorizes with a session token cookie.
func NewCookieAuthorizer(token string) Authorizer {
	return &cookieAuthorizer{
		token: token,
	}
}

// Session is the result of one authentication exchange.
type Session struct {
	Credentials Credentials
	Token       string
}

// NewSession exchanges credentials for a token.  There is no retry and
// nothing is cached, every call is a new exchange.
func NewSession(ctx context.Context, source TokenSource, credentials Credentials) (*Session, error) {
	token, err := source.CreateToken(ctx, credentials)
	if err != nil {
		return nil, fmt.Errorf("authenticating as %s: %w", credentials.Username, err)
	}

	if token == "" {
		return nil, fmt.Errorf("authenticating as %s: %w", credentials.Username, ErrMissingToken)
	}

	session := &Session{
		Credentials: credentials,
		Token:       token,
	}

	return session, nil
}

// Authorizer returns the authorizer for the requested mode.
func (s *Session) Authorizer(mode AuthMode) (Authorizer, error) {
	switch mode {
	case AuthHeader:
		return NewHeaderAuthorizer(s.Credentials), nil
	case AuthCookie:
		return NewCookieAuthorizer(s.Token), nil
	}

	return nil, fmt.Errorf("%w: unknown auth mode %q", ErrInvalidConfig, mode)
}

// Authenticate performs a fresh exchange of the default credentials and fails
// the current spec straight away if that does not yield a token.
func Authenticate(client *APIClient, ctx context.Context) *Session {
	GinkgoHelper()

	session, err := NewSession(ctx, client, DefaultCredentials())
	Expect(err).NotTo(HaveOccurred(), "authentication is a precondition")
	Expect(session.Token).NotTo(BeEmpty())

	return session
}

// AuthorizeAs authenticates and returns an authorizer for the mode.
func AuthorizeAs(client *APIClient, ctx context.Context, mode AuthMode) Authorizer {
	GinkgoHelper()

	authorizer, err := Authenticate(client, ctx).Authorizer(mode)
	Expect(err).NotTo(HaveOccurred())

	return authorizer
}
