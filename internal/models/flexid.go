// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexID is an identifier that accepts either a JSON number or a numeric
// string ("7" and 7 are equivalent). Dashboard clients send both forms.
type FlexID uint64

// UnmarshalJSON implements json.Unmarshaler. Non-numeric strings, floats
// with a fractional part and negative values are rejected.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid identifier %q: must be a number or numeric string", s)
	}

	*f = FlexID(v)
	return nil
}

// MarshalJSON implements json.Marshaler, emitting the plain number form.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(f))
}

// Uint64 returns the identifier as a uint64.
func (f FlexID) Uint64() uint64 {
	return uint64(f)
}
