// SPDX-FileCopyrightText: 2025 WellPulse Authors
//
// SPDX-License-Identifier: Apache-2.0
package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedFileMissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	records, err := loadSeedFile[seedUser](t.TempDir(), "users.json")
	if err != nil {
		t.Fatalf("expected missing seed file to be skipped, got error: %v", err)
	}

	if records != nil {
		t.Errorf("expected nil records for missing file, got %v", records)
	}
}

func TestLoadSeedFileMalformedJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := loadSeedFile[seedUser](dir, "users.json")
	if err == nil {
		t.Fatal("expected parse error for malformed seed file")
	}
}

func TestLoadSeedFileParsesUsers(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `[
		{"id": 1, "first_name": "Lena", "last_name": "Ortiz", "email": "lena@example.com",
		 "dob": "1990-05-14", "gender": "Female", "height_cm": 168.5},
		{"id": 2, "first_name": "Marcus", "last_name": "Webb", "email": "marcus@example.com",
		 "dob": "1978-11-02", "gender": "Male"}
	]`

	if err := os.WriteFile(filepath.Join(dir, "users.json"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	users, err := loadSeedFile[seedUser](dir, "users.json")
	if err != nil {
		t.Fatalf("failed to load seed users: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}

	if users[0].Email != "lena@example.com" {
		t.Errorf("unexpected email %q", users[0].Email)
	}

	if users[0].HeightCM == nil || *users[0].HeightCM != 168.5 {
		t.Errorf("expected height 168.5, got %v", users[0].HeightCM)
	}

	if users[1].HeightCM != nil {
		t.Errorf("expected absent height to stay nil, got %v", *users[1].HeightCM)
	}
}

func TestParseSeedTimeAcceptsBothFormats(t *testing.T) {
	t.Parallel()

	cases := []string{
		"2025-03-01T22:45:00Z",
		"2025-03-01T22:45:00+04:00",
		"2025-03-01T22:45:00",
	}

	for _, c := range cases {
		if _, err := parseSeedTime(c); err != nil {
			t.Errorf("failed to parse %q: %v", c, err)
		}
	}

	if _, err := parseSeedTime("yesterday evening"); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}
