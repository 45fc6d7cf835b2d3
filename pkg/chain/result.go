/*
Copyright Swisscom Blockchain AG. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package chain

import (
	"fmt"
)

// Result is the decoded return value of a read-only contract operation.
// Implementations decode their wire representation (VM stack items, JSON)
// into plain Go values before building a Result, so the accessors only
// bridge the loose typing contracts are allowed: booleans may arrive as
// integers or strings, single values where lists are expected.
type Result struct {
	Value interface{}
}

// Bool reads the result as a boolean. Contracts signal false as nil, empty
// or zero values, so all of those map to false.
func (r *Result) Bool() (bool, error) {
	switch v := r.Value.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case string:
		switch v {
		case "", "0", "false":
			return false, nil
		case "1", "true":
			return true, nil
		}

		return false, fmt.Errorf("chain result %q is not a boolean", v)
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	default:
		return false, fmt.Errorf("chain result of type %T is not a boolean", r.Value)
	}
}

// String reads the result as a string. A nil value reads as the empty
// string, callers decide whether empty is meaningful.
func (r *Result) String() (string, error) {
	switch v := r.Value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("chain result of type %T is not a string", r.Value)
	}
}

// Strings reads the result as a list of strings. A bare string reads as a
// one-element list, contracts with a single entry return it unwrapped.
func (r *Result) Strings() ([]string, error) {
	switch v := r.Value.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{v}, nil
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))

		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("chain result list holds a %T, not a string", item)
			}

			out = append(out, s)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("chain result of type %T is not a string list", r.Value)
	}
}
