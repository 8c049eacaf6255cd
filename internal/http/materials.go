package httpapi

import (
	"net/http"
	"time"

	"elearn-backend-go/internal/models"
	"elearn-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MaterialCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Type        string   `json:"type" validate:"required"`
	Content     *string  `json:"content"`
	FileURL     *string  `json:"fileUrl"`
	FileName    *string  `json:"fileName"`
	VideoURL    *string  `json:"videoUrl"`
	ModelURL    *string  `json:"modelUrl"`
	AREnabled   *bool    `json:"arEnabled"`
	ModelScale  *float64 `json:"modelScale"`
	IsPublished *bool    `json:"isPublished"`
}

type MaterialUpdateRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Type        *string  `json:"type"`
	Content     *string  `json:"content"`
	FileURL     *string  `json:"fileUrl"`
	FileName    *string  `json:"fileName"`
	VideoURL    *string  `json:"videoUrl"`
	ModelURL    *string  `json:"modelUrl"`
	AREnabled   *bool    `json:"arEnabled"`
	ModelScale  *float64 `json:"modelScale"`
	IsPublished *bool    `json:"isPublished"`
	Order       *int     `json:"order"`
}

type ReorderRequest struct {
	MaterialIDs []string `json:"materialIds" validate:"required"`
}

func (s *Server) ListMaterials(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	classroom, err := services.FetchClassroom(s.DB, chi.URLParam(r, "classroomId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	enrolled, err := services.IsEnrolled(s.DB, user.ID, classroom.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !services.CanReadClassroom(user, classroom, enrolled) {
		WriteError(w, http.StatusForbidden, classroomReadDenial(user))
		return
	}
	query := `
SELECT id, title, description, type, content, file_url, file_name, video_url, model_url,
       ar_enabled, model_scale, sort_order, is_published, classroom_id, created_by_id, created_at, updated_at
FROM materials
WHERE classroom_id = $1
`
	// Students only ever see published materials.
	if user.Role == models.RoleStudent {
		query += "  AND is_published = TRUE\n"
	}
	query += "ORDER BY sort_order ASC\nLIMIT 100"
	materials := []models.Material{}
	if err := s.DB.Select(&materials, query, classroom.ID); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]MaterialDTO, 0, len(materials))
	for _, material := range materials {
		items = append(items, enrichMaterialDTO(s.DB, material))
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetMaterial(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	material, err := services.FetchMaterial(s.DB, chi.URLParam(r, "materialId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	classroom, err := services.FetchClassroom(s.DB, material.ClassroomID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	enrolled, err := services.IsEnrolled(s.DB, user.ID, classroom.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !services.CanReadMaterial(user, material, classroom, enrolled) {
		WriteError(w, http.StatusForbidden, "Not authorized")
		return
	}
	WriteJSON(w, http.StatusOK, enrichMaterialDTO(s.DB, material))
}

func (s *Server) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	classroom, err := services.FetchClassroom(s.DB, chi.URLParam(r, "classroomId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !services.CanWriteMaterial(user, classroom) {
		WriteError(w, http.StatusForbidden, "Not authorized")
		return
	}
	var req MaterialCreateRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if !services.ValidMaterialType(req.Type) {
		WriteError(w, http.StatusBadRequest, "Invalid material type")
		return
	}
	nextOrder, err := services.NextMaterialOrder(s.DB, classroom.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	now := time.Now().UTC()
	material := models.Material{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Content:     req.Content,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		VideoURL:    req.VideoURL,
		ModelURL:    req.ModelURL,
		AREnabled:   boolOr(req.AREnabled, true),
		ModelScale:  floatOr(req.ModelScale, 1.0),
		SortOrder:   nextOrder,
		IsPublished: boolOr(req.IsPublished, true),
		ClassroomID: classroom.ID,
		CreatedByID: user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err = s.DB.Exec(`
INSERT INTO materials (id, title, description, type, content, file_url, file_name, video_url, model_url,
                       ar_enabled, model_scale, sort_order, is_published, classroom_id, created_by_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$16)
`, material.ID, material.Title, material.Description, material.Type, material.Content, material.FileURL,
		material.FileName, material.VideoURL, material.ModelURL, material.AREnabled, material.ModelScale,
		material.SortOrder, material.IsPublished, material.ClassroomID, material.CreatedByID, now)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	dto := materialDTO(material)
	dto.CreatedBy = &CreatorSummaryDTO{ID: user.ID, Name: user.Name}
	WriteJSON(w, http.StatusCreated, dto)
}

func (s *Server) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	material, err := services.FetchMaterial(s.DB, chi.URLParam(r, "materialId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	classroom, err := services.FetchClassroom(s.DB, material.ClassroomID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !services.CanWriteMaterial(user, classroom) {
		WriteError(w, http.StatusForbidden, "Not authorized")
		return
	}
	var req MaterialUpdateRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if req.Type != nil && !services.ValidMaterialType(*req.Type) {
		WriteError(w, http.StatusBadRequest, "Invalid material type")
		return
	}
	sets := newUpdateSet()
	if req.Title != nil {
		sets.add("title", *req.Title)
	}
	if req.Description != nil {
		sets.add("description", *req.Description)
	}
	if req.Type != nil {
		sets.add("type", *req.Type)
	}
	if req.Content != nil {
		sets.add("content", *req.Content)
	}
	if req.FileURL != nil {
		sets.add("file_url", *req.FileURL)
	}
	if req.FileName != nil {
		sets.add("file_name", *req.FileName)
	}
	if req.VideoURL != nil {
		sets.add("video_url", *req.VideoURL)
	}
	if req.ModelURL != nil {
		sets.add("model_url", *req.ModelURL)
	}
	if req.AREnabled != nil {
		sets.add("ar_enabled", *req.AREnabled)
	}
	if req.ModelScale != nil {
		sets.add("model_scale", *req.ModelScale)
	}
	if req.IsPublished != nil {
		sets.add("is_published", *req.IsPublished)
	}
	if req.Order != nil {
		sets.add("sort_order", *req.Order)
	}
	if !sets.empty() {
		sets.add("updated_at", time.Now().UTC())
		if _, err := s.DB.Exec(sets.query("materials"), sets.args(material.ID)...); err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}
	updated, err := services.FetchMaterial(s.DB, material.ID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, enrichMaterialDTO(s.DB, updated))
}

func (s *Server) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	material, err := services.FetchMaterial(s.DB, chi.URLParam(r, "materialId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	classroom, err := services.FetchClassroom(s.DB, material.ClassroomID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !services.CanWriteMaterial(user, classroom) {
		WriteError(w, http.StatusForbidden, "Not authorized")
		return
	}
	if _, err := s.DB.Exec(`DELETE FROM materials WHERE id = $1`, material.ID); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Material deleted"})
}

func (s *Server) ReorderMaterials(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	classroom, err := services.FetchClassroom(s.DB, chi.URLParam(r, "classroomId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !services.CanWriteMaterial(user, classroom) {
		WriteError(w, http.StatusForbidden, "Not authorized")
		return
	}
	var req ReorderRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := services.ReorderMaterials(s.DB, classroom.ID, req.MaterialIDs); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Materials reordered"})
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func floatOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}
