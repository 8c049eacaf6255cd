package httpapi

import (
	"time"

	"elearn-backend-go/internal/models"
	"elearn-backend-go/internal/services"

	"github.com/jmoiron/sqlx"
)

type CreatorSummaryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MaterialDTO struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	Type        string             `json:"type"`
	Content     *string            `json:"content"`
	FileURL     *string            `json:"fileUrl"`
	FileName    *string            `json:"fileName"`
	VideoURL    *string            `json:"videoUrl"`
	ModelURL    *string            `json:"modelUrl"`
	AREnabled   bool               `json:"arEnabled"`
	ModelScale  float64            `json:"modelScale"`
	Order       int                `json:"order"`
	IsPublished bool               `json:"isPublished"`
	ClassroomID string             `json:"classroomId"`
	CreatedByID string             `json:"createdById"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	CreatedBy   *CreatorSummaryDTO `json:"createdBy"`
}

func materialDTO(material models.Material) MaterialDTO {
	return MaterialDTO{
		ID:          material.ID,
		Title:       material.Title,
		Description: material.Description,
		Type:        material.Type,
		Content:     material.Content,
		FileURL:     material.FileURL,
		FileName:    material.FileName,
		VideoURL:    material.VideoURL,
		ModelURL:    material.ModelURL,
		AREnabled:   material.AREnabled,
		ModelScale:  material.ModelScale,
		Order:       material.SortOrder,
		IsPublished: material.IsPublished,
		ClassroomID: material.ClassroomID,
		CreatedByID: material.CreatedByID,
		CreatedAt:   material.CreatedAt,
		UpdatedAt:   material.UpdatedAt,
	}
}

// enrichMaterialDTO attaches the creator summary; a deleted creator leaves it
// null rather than failing the request.
func enrichMaterialDTO(db *sqlx.DB, material models.Material) MaterialDTO {
	dto := materialDTO(material)
	creator, err := services.FetchUser(db, material.CreatedByID)
	if err == nil {
		dto.CreatedBy = &CreatorSummaryDTO{ID: creator.ID, Name: creator.Name}
	}
	return dto
}
