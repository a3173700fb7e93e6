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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type TestConfig struct {
	// BaseURL is the booking API.  When empty an in-process twin is
	// started and BaseURL is pointed at it.
	BaseURL        string
	AuthMode       AuthMode
	RequestTimeout time.Duration
	TestTimeout    time.Duration
	DebugLogging   bool
	LogRequests    bool
	LogResponses   bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if configuration values are malformed.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	requestTimeout, err := getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	testTimeout, err := getDurationWithDefault("TEST_TIMEOUT", 2*time.Minute)
	if err != nil {
		return nil, err
	}

	config := &TestConfig{
		BaseURL:        strings.TrimSuffix(os.Getenv("API_BASE_URL"), "/"),
		AuthMode:       AuthMode(strings.ToLower(getWithDefault("AUTH_MODE", string(AuthHeader)))),
		RequestTimeout: requestTimeout,
		TestTimeout:    testTimeout,
		DebugLogging:   getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:    getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:   getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

// UseTwin reports whether no remote service is configured.
func (c *TestConfig) UseTwin() bool {
	return c.BaseURL == ""
}

func getWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}

	if duration <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, key)
	}

	return duration, nil
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../.env",    // From test/api directory
		"../../.env", // From test/api/suites directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Variables already in the environment win over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validate(config *TestConfig) error {
	switch config.AuthMode {
	case AuthHeader, AuthCookie:
	default:
		return fmt.Errorf("%w: AUTH_MODE must be one of %q or %q, got %q", ErrInvalidConfig, AuthHeader, AuthCookie, config.AuthMode)
	}

	if config.BaseURL != "" && !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		return fmt.Errorf("%w: API_BASE_URL must be an http or https URL, got %q", ErrInvalidConfig, config.BaseURL)
	}

	return nil
}
