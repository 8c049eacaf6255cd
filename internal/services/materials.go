package services

import (
	"database/sql"
	"errors"

	"elearn-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

var materialTypes = map[string]bool{
	models.MaterialText:    true,
	models.MaterialFile:    true,
	models.MaterialVideo:   true,
	models.MaterialModel3D: true,
}

func ValidMaterialType(materialType string) bool {
	return materialTypes[materialType]
}

func FetchMaterial(db *sqlx.DB, materialID string) (models.Material, error) {
	var material models.Material
	err := db.Get(&material, `
SELECT id, title, description, type, content, file_url, file_name, video_url, model_url,
       ar_enabled, model_scale, sort_order, is_published, classroom_id, created_by_id, created_at, updated_at
FROM materials
WHERE id = $1
`, materialID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Material{}, ErrNotFound("Material not found")
	}
	return material, err
}

// NextMaterialOrder returns max(sort_order)+1 within the classroom, starting
// at 1 when the classroom has no materials yet.
func NextMaterialOrder(db *sqlx.DB, classroomID string) (int, error) {
	var max sql.NullInt64
	if err := db.Get(&max, `SELECT max(sort_order) FROM materials WHERE classroom_id = $1`, classroomID); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 1, nil
	}
	return int(max.Int64) + 1, nil
}

// ReorderMaterials assigns sort_order = position+1 for each id, one UPDATE per
// id with no transaction across the list; a failure partway leaves earlier
// assignments in place. IDs outside the classroom are ignored by the WHERE
// clause.
func ReorderMaterials(db *sqlx.DB, classroomID string, materialIDs []string) error {
	for index, materialID := range materialIDs {
		_, err := db.Exec(`
UPDATE materials SET sort_order = $1 WHERE id = $2 AND classroom_id = $3
`, index+1, materialID, classroomID)
		if err != nil {
			return err
		}
	}
	return nil
}
