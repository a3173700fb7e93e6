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

package api_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/nscaledev/uni-booker/test/api"
)

// setenv sets or, given an empty value, unsets a variable for one spec.
func setenv(key, value string) {
	old, ok := os.LookupEnv(key)

	DeferCleanup(func() {
		if ok {
			Expect(os.Setenv(key, old)).To(Succeed())
		} else {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	if value == "" {
		Expect(os.Unsetenv(key)).To(Succeed())
		return
	}

	Expect(os.Setenv(key, value)).To(Succeed())
}

var _ = Describe("LoadTestConfig", Serial, func() {
	BeforeEach(func() {
		for _, key := range []string{"API_BASE_URL", "AUTH_MODE", "REQUEST_TIMEOUT", "TEST_TIMEOUT", "LOG_REQUESTS"} {
			setenv(key, "")
		}
	})

	It("should default to the twin with header auth", func() {
		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.UseTwin()).To(BeTrue())
		Expect(config.AuthMode).To(Equal(api.AuthHeader))
		Expect(config.RequestTimeout).To(Equal(30 * time.Second))
		Expect(config.TestTimeout).To(Equal(2 * time.Minute))
		Expect(config.LogRequests).To(BeFalse())
	})

	It("should honour the environment", func() {
		setenv("API_BASE_URL", "https://restful-booker.herokuapp.com/")
		setenv("AUTH_MODE", "Cookie")
		setenv("REQUEST_TIMEOUT", "5s")
		setenv("LOG_REQUESTS", "true")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.UseTwin()).To(BeFalse())
		Expect(config.BaseURL).To(Equal("https://restful-booker.herokuapp.com"))
		Expect(config.AuthMode).To(Equal(api.AuthCookie))
		Expect(config.RequestTimeout).To(Equal(5 * time.Second))
		Expect(config.LogRequests).To(BeTrue())
	})

	DescribeTable("should reject malformed values",
		func(key, value string) {
			setenv(key, value)

			_, err := api.LoadTestConfig()
			Expect(err).To(MatchError(api.ErrInvalidConfig))
		},
		Entry("an unknown auth mode", "AUTH_MODE", "bearer"),
		Entry("an unparsable timeout", "REQUEST_TIMEOUT", "soon"),
		Entry("a negative timeout", "TEST_TIMEOUT", "-1s"),
		Entry("a base URL without a scheme", "API_BASE_URL", "restful-booker.herokuapp.com"),
	)
})
