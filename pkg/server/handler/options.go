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

package handler

import (
	"github.com/spf13/pflag"
)

const (
	// DefaultUsername is the administrator account the booking API ships with.
	DefaultUsername = "admin"

	// DefaultPassword is the administrator account's password.
	DefaultPassword = "password123"
)

// Options defines configurable handler options.
type Options struct {
	// Username that may be exchanged for a token or sent as basic auth.
	Username string

	// Password that goes with Username.
	Password string
}

// NewOptions returns options with the stock administrator credentials.
func NewOptions() *Options {
	return &Options{
		Username: DefaultUsername,
		Password: DefaultPassword,
	}
}

// AddFlags adds the options flags to the given flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Username, "admin-username", DefaultUsername, "Username accepted for token creation and basic auth.")
	f.StringVar(&o.Password, "admin-password", DefaultPassword, "Password accepted for token creation and basic auth.")
}
