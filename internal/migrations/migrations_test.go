package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		version int
		ok      bool
	}{
		{name: "V1__init.sql", version: 1, ok: true},
		{name: "V12__add_metrics.sql", version: 12, ok: true},
		{name: "init.sql", ok: false},
		{name: "V__missing.sql", ok: false},
		{name: "Vx__bad.sql", ok: false},
	}
	for _, tt := range tests {
		version, ok := parseVersion(tt.name)
		if version != tt.version || ok != tt.ok {
			t.Errorf("parseVersion(%q) = (%d, %v), want (%d, %v)", tt.name, version, ok, tt.version, tt.ok)
		}
	}
}

func TestListMigrationsOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"V10__later.sql", "V2__second.sql", "V1__first.sql", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	migs, err := listMigrations(dir)
	if err != nil {
		t.Fatalf("listMigrations() error = %v", err)
	}
	got := make([]string, 0, len(migs))
	for _, mig := range migs {
		got = append(got, mig.Name)
	}
	want := []string{"V1__first.sql", "V2__second.sql", "V10__later.sql"}
	if len(got) != len(want) {
		t.Fatalf("listMigrations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("migration %d = %q, want %q", i, got[i], want[i])
		}
	}
}
