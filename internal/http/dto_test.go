package httpapi

import (
	"encoding/json"
	"testing"
	"time"

	"elearn-backend-go/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMaterialDTOMapping(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	modelURL := "skeleton.glb"
	material := models.Material{
		ID:          "m1",
		Title:       "Skeleton",
		Type:        models.MaterialModel3D,
		ModelURL:    &modelURL,
		AREnabled:   true,
		ModelScale:  1.0,
		SortOrder:   3,
		IsPublished: true,
		ClassroomID: "c1",
		CreatedByID: "t1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	dto := materialDTO(material)
	assert.Equal(t, 3, dto.Order)
	assert.Equal(t, "MODEL3D", dto.Type)
	assert.True(t, dto.AREnabled)
	assert.Equal(t, 1.0, dto.ModelScale)

	// sort_order serializes under the public "order" name.
	raw, err := json.Marshal(dto)
	assert.NoError(t, err)
	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(3), decoded["order"])
	assert.NotContains(t, decoded, "sortOrder")
}

func TestClassroomDTOEnrichmentOmittedWhenAbsent(t *testing.T) {
	classroom := models.Classroom{ID: "c1", Name: "Biology 101", Subject: "Science", Code: "K3F9QZ", TeacherID: "t1"}
	raw, err := json.Marshal(classroomDTO(classroom))
	assert.NoError(t, err)
	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "_count")
	assert.NotContains(t, decoded, "teacher")
}

func TestUserDTOHidesPasswordHash(t *testing.T) {
	user := models.User{ID: "u1", Email: "a@b.c", PasswordHash: "$2a$...", Name: "Ana", Role: models.RoleStudent}
	raw, err := json.Marshal(userDTO(user))
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$")
}

func TestFieldDefaults(t *testing.T) {
	enabled := false
	scale := 2.5
	assert.True(t, boolOr(nil, true))
	assert.False(t, boolOr(&enabled, true))
	assert.Equal(t, 1.0, floatOr(nil, 1.0))
	assert.Equal(t, 2.5, floatOr(&scale, 1.0))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 120, parseInt("", 120))
	assert.Equal(t, 120, parseInt("abc", 120))
	assert.Equal(t, 120, parseInt("-5", 120))
	assert.Equal(t, 42, parseInt("42", 120))
}
