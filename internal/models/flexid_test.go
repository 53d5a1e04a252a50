// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestFlexID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint64
		wantErr bool
	}{
		{name: "number", input: `7`, want: 7},
		{name: "numeric string", input: `"7"`, want: 7},
		{name: "zero", input: `0`, want: 0},
		{name: "large id", input: `18446744073709551615`, want: 18446744073709551615},
		{name: "non-numeric string", input: `"abc"`, wantErr: true},
		{name: "float", input: `1.5`, wantErr: true},
		{name: "float string", input: `"1.5"`, wantErr: true},
		{name: "negative", input: `-1`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Unmarshal(%s) expected error, got %d", tt.input, id)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error = %v", tt.input, err)
			}
			if id.Uint64() != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, id, tt.want)
			}
		})
	}
}

func TestFlexID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(FlexID(42))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "42" {
		t.Errorf("Marshal() = %s, want 42", data)
	}
}

func TestPointsRequest_Decode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "numeric ids",
			body: `{"player_id": 1, "activity_id": 2, "points": 10}`,
		},
		{
			name: "string ids",
			body: `{"player_id": "1", "activity_id": "2", "points": 10}`,
		},
		{
			name: "negative points",
			body: `{"player_id": 1, "activity_id": 2, "points": -5}`,
		},
		{
			name:    "points as string",
			body:    `{"player_id": 1, "activity_id": 2, "points": "5"}`,
			wantErr: true,
		},
		{
			name:    "non-numeric player id",
			body:    `{"player_id": "one", "activity_id": 2, "points": 10}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req PointsRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				if err == nil {
					t.Error("Unmarshal() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error = %v", err)
			}
		})
	}
}
