// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: goose's first query fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestEmbeddedMigrations_CreateSnapshots(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "00001_create_snapshots.sql")
	if err != nil {
		t.Fatalf("migration not embedded: %v", err)
	}

	sqlText := string(body)
	for _, want := range []string{"-- +goose Up", "CREATE TABLE IF NOT EXISTS snapshots", "JSONB", "-- +goose Down"} {
		if !strings.Contains(sqlText, want) {
			t.Errorf("expected migration to contain %q", want)
		}
	}
}
