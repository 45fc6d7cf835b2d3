/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package claim

import (
	"encoding/json"
)

// marshalWithCustomFields marshals v and the custom fields map into a single
// JSON object. Keys of v win on collision.
func marshalWithCustomFields(v interface{}, cf map[string]interface{}) ([]byte, error) {
	vm, err := toMap(v)
	if err != nil {
		return nil, err
	}

	for k, val := range cf {
		if _, exists := vm[k]; !exists {
			vm[k] = val
		}
	}

	return json.Marshal(vm)
}

// unmarshalWithCustomFields unmarshals data into v and collects the JSON keys
// v does not declare into cf, so unknown fields survive a round trip.
func unmarshalWithCustomFields(data []byte, v interface{}, cf map[string]interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}

	vData, err := json.Marshal(v)
	if err != nil {
		return err
	}

	var vf map[string]interface{}
	if err := json.Unmarshal(vData, &vf); err != nil {
		return err
	}

	var af map[string]interface{}
	if err := json.Unmarshal(data, &af); err != nil {
		return err
	}

	for k, val := range af {
		if _, ok := vf[k]; !ok {
			cf[k] = val
		}
	}

	return nil
}

func toMap(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var m map[string]interface{}

	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}

	return m, nil
}
