package database

import (
	"strings"
	"testing"
)

func TestMigrationFilesArePaired(t *testing.T) {
	entries, err := migrationFiles.ReadDir("migrations")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no migration files embedded")
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Errorf("unexpected migration file %q", name)
		}
	}

	for base := range ups {
		if !downs[base] {
			t.Errorf("migration %q has no down file", base)
		}
	}
	for base := range downs {
		if !ups[base] {
			t.Errorf("migration %q has no up file", base)
		}
	}
}

// Reseeding deletes every practitioner row, so the reference from stored
// appointments must never block that delete.
func TestPractitionerReferenceSurvivesDeletion(t *testing.T) {
	ddl, err := migrationFiles.ReadFile("migrations/000001_init.up.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	stmt := ""
	for _, candidate := range strings.Split(string(ddl), ";") {
		if strings.Contains(candidate, "CREATE TABLE") && strings.Contains(candidate, "appointments") {
			stmt = candidate
			break
		}
	}
	if stmt == "" {
		t.Fatal("appointments table not found in the initial migration")
	}

	for _, line := range strings.Split(stmt, "\n") {
		if !strings.Contains(line, "practitioner_id") {
			continue
		}
		if !strings.Contains(line, "ON DELETE SET NULL") {
			t.Errorf("practitioner_id reference must be ON DELETE SET NULL, got %q", strings.TrimSpace(line))
		}
		return
	}
	t.Fatal("appointments table has no practitioner_id column")
}
