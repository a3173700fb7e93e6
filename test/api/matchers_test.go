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
	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/nscaledev/uni-booker/test/api"
)

var _ = Describe("MatchJSONSubset", func() {
	expected := map[string]any{
		"firstname": "Sally",
		"bookingdates": map[string]any{
			"checkin": "2020-05-21",
		},
	}

	DescribeTable("matching",
		func(actual any, matches bool) {
			if matches {
				Expect(actual).To(api.MatchJSONSubset(expected))
			} else {
				Expect(actual).NotTo(api.MatchJSONSubset(expected))
			}
		},
		Entry("a typed booking with extra fields", api.SallyBrown(), true),
		Entry("a raw document", []byte(`{"firstname":"Sally","bookingdates":{"checkin":"2020-05-21","checkout":"2020-09-27"},"extra":1}`), true),
		Entry("a differing nested value", []byte(`{"firstname":"Sally","bookingdates":{"checkin":"2020-05-22"}}`), false),
		Entry("a missing field", []byte(`{"bookingdates":{"checkin":"2020-05-21"}}`), false),
	)

	It("should compare numbers and booleans by value", func() {
		Expect(api.SallyBrown()).To(api.MatchJSONSubset(map[string]any{"totalprice": 897, "depositpaid": true}))
		Expect(api.SallyBrown()).NotTo(api.MatchJSONSubset(map[string]any{"totalprice": 898}))
	})

	It("should require arrays to match exactly", func() {
		Expect([]byte(`{"ids":[1,2]}`)).To(api.MatchJSONSubset(map[string]any{"ids": []int{1, 2}}))
		Expect([]byte(`{"ids":[1,2,3]}`)).NotTo(api.MatchJSONSubset(map[string]any{"ids": []int{1, 2}}))
	})
})
