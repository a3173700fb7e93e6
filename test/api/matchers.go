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
	"encoding/json"
	"fmt"

	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

// normalize round trips a value through JSON so structs, maps and raw
// documents compare alike.
func normalize(value any) (any, error) {
	var data []byte

	switch t := value.(type) {
	case []byte:
		data = t
	case json.RawMessage:
		data = t
	default:
		var err error

		if data, err = json.Marshal(value); err != nil {
			return nil, fmt.Errorf("marshaling %T: %w", value, err)
		}
	}

	var out any

	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling %T: %w", value, err)
	}

	return out, nil
}

// subsetMatcher requires objects to have at least the expected keys, arrays
// to have exactly the expected elements, and scalars to be equal.
func subsetMatcher(expected any) types.GomegaMatcher {
	switch t := expected.(type) {
	case map[string]any:
		keys := gstruct.Keys{}

		for k, v := range t {
			keys[k] = subsetMatcher(v)
		}

		return gstruct.MatchKeys(gstruct.IgnoreExtras, keys)
	case []any:
		elements := make([]any, len(t))

		for i, v := range t {
			elements[i] = subsetMatcher(v)
		}

		return HaveExactElements(elements...)
	case nil:
		return BeNil()
	default:
		return Equal(t)
	}
}

// MatchJSONSubset succeeds when the actual value, compared as JSON, contains
// every field of the expected value.  Extra fields are tolerated.
func MatchJSONSubset(expected any) types.GomegaMatcher {
	normalized, err := normalize(expected)
	if err != nil {
		panic(err)
	}

	return WithTransform(normalize, subsetMatcher(normalized))
}
