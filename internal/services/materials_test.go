package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestValidMaterialType(t *testing.T) {
	tests := []struct {
		materialType string
		want         bool
	}{
		{materialType: "TEXT", want: true},
		{materialType: "FILE", want: true},
		{materialType: "VIDEO", want: true},
		{materialType: "MODEL3D", want: true},
		{materialType: "AUDIO", want: false},
		{materialType: "text", want: false},
		{materialType: "", want: false},
	}
	for _, tt := range tests {
		if got := ValidMaterialType(tt.materialType); got != tt.want {
			t.Errorf("ValidMaterialType(%q) = %v, want %v", tt.materialType, got, tt.want)
		}
	}
}

// Positions map to sort_order 1..n in list order, and every UPDATE stays
// scoped to the classroom so ids from other classrooms cannot be moved.
func TestReorderMaterialsAssignsPositions(t *testing.T) {
	db, mock := newMockDB(t)
	ids := []string{"m3", "m1", "m2"}
	for i, id := range ids {
		mock.ExpectExec("UPDATE materials SET sort_order").
			WithArgs(i+1, id, "c1").
			WillReturnResult(sqlmock.NewResult(0, 1))
	}

	if err := ReorderMaterials(db, "c1", ids); err != nil {
		t.Fatalf("ReorderMaterials() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestReorderMaterialsEmptyList(t *testing.T) {
	db, mock := newMockDB(t)
	if err := ReorderMaterials(db, "c1", nil); err != nil {
		t.Fatalf("ReorderMaterials() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
