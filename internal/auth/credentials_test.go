// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package auth

import (
	"errors"
	"testing"
)

func TestNewCredentialStore(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid", username: "admin", password: "admin123#@0369", wantErr: false},
		{name: "empty username", username: "", password: "admin123#@0369", wantErr: true},
		{name: "empty password", username: "admin", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewCredentialStore(tt.username, tt.password)
			if tt.wantErr {
				if err == nil {
					t.Error("NewCredentialStore() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("NewCredentialStore() unexpected error = %v", err)
				return
			}
			if store == nil {
				t.Error("NewCredentialStore() returned nil store")
			}
		})
	}
}

func TestCredentialStore_Verify(t *testing.T) {
	store, err := NewCredentialStore("admin", "admin123#@0369")
	if err != nil {
		t.Fatalf("NewCredentialStore() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "exact match", username: "admin", password: "admin123#@0369", wantErr: false},
		{name: "wrong password", username: "admin", password: "wrong", wantErr: true},
		{name: "wrong username", username: "root", password: "admin123#@0369", wantErr: true},
		{name: "case sensitive username", username: "Admin", password: "admin123#@0369", wantErr: true},
		{name: "case sensitive password", username: "admin", password: "ADMIN123#@0369", wantErr: true},
		{name: "both empty", username: "", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, err := store.Verify(tt.username, tt.password)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCredentials) {
					t.Errorf("Verify() error = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Verify() unexpected error = %v", err)
				return
			}
			if userID != adminUserID {
				t.Errorf("Verify() user id = %d, want %d", userID, adminUserID)
			}
		})
	}
}
