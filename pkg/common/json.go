/** Copyright 2024-2026 the arith authors.

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

package common

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ParseJson decodes data with numbers kept as json.Number, so that integer
// operands survive the trip without being widened to float64.
func ParseJson(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}

func ParseJsonString(data string, v any) error {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}

func GetInt64(data map[string]any, key string) (int64, error) {
	if item, ok := data[key]; ok {
		if n, ok := item.(json.Number); ok {
			if v, err := strconv.ParseInt(string(n), 10, 64); err == nil {
				return v, nil
			}
			return 0, errors.Errorf("Key '%s' is not an integer type", key)
		}
		return 0, errors.Errorf("Key '%s' is not a number type", key)
	}
	return 0, errors.Errorf("Key '%s' not found", key)
}

func GetFloat64(data map[string]any, key string) (float64, error) {
	if item, ok := data[key]; ok {
		if n, ok := item.(json.Number); ok {
			if v, err := strconv.ParseFloat(string(n), 64); err == nil {
				return v, nil
			}
			return 0, errors.Errorf("Key '%s' is not a number type", key)
		}
		return 0, errors.Errorf("Key '%s' is not a number type", key)
	}
	return 0, errors.Errorf("Key '%s' not found", key)
}

func GetBoolean(data map[string]any, key string) (bool, error) {
	if item, ok := data[key]; ok {
		if v, ok := item.(bool); ok {
			return v, nil
		}
		return false, errors.Errorf("Key '%s' is not a boolean type", key)
	}
	return false, errors.Errorf("Key '%s' not found", key)
}

func GetString(data map[string]any, key string) (string, error) {
	if item, ok := data[key]; ok {
		if s, ok := item.(string); ok {
			return s, nil
		}
		return "", errors.Errorf("Key '%s' is not a string type", key)
	}
	return "", errors.Errorf("Key '%s' not found", key)
}
