package common

import (
	"encoding/json"
	"fmt"
)

// ParseJSON extracts and unmarshals the JSON object embedded in an LLM
// response. Models routinely wrap the object in markdown fences or prose, so
// the slice between the first '{' and the last '}' is taken before a strict
// unmarshal. There is no field defaulting here: a response that does not
// decode is an error for the caller to handle.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	start := -1
	for i, c := range response {
		if c == '{' {
			start = i
			break
		}
	}
	if start == -1 {
		return zero, fmt.Errorf("no JSON object found in response (missing '{')")
	}
	end := -1
	for i := len(response) - 1; i >= start; i-- {
		if response[i] == '}' {
			end = i + 1
			break
		}
	}
	if end == -1 {
		return zero, fmt.Errorf("no JSON object found in response (missing '}')")
	}

	var result T
	if err := json.Unmarshal([]byte(response[start:end]), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}
