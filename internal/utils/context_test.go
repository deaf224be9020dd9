// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-table-order/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionCtxKey(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestGetSessionFromContext_Success(t *testing.T) {
	ctx := WithSession(context.Background(), models.Session{Username: "admin"})

	session, ok := GetSessionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if session.Username != "admin" {
		t.Errorf("expected username=admin, got %q", session.Username)
	}
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	_, ok := GetSessionFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetSessionFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "admin")

	_, ok := GetSessionFromContext(ctx)
	if ok {
		t.Error("expected ok=false for a string value")
	}
}
