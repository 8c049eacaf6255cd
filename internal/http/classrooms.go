package httpapi

import (
	"net/http"
	"strings"
	"time"

	"elearn-backend-go/internal/models"
	"elearn-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ClassroomCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Subject     string  `json:"subject" validate:"required"`
	CoverImage  *string `json:"coverImage"`
}

type ClassroomUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Subject     *string `json:"subject"`
	CoverImage  *string `json:"coverImage"`
	IsActive    *bool   `json:"isActive"`
}

type JoinClassroomRequest struct {
	Code string `json:"code" validate:"required"`
}

type StudentDTO struct {
	ID       string    `db:"id" json:"id"`
	Email    string    `db:"email" json:"email"`
	Name     string    `db:"name" json:"name"`
	Avatar   *string   `db:"avatar" json:"avatar"`
	JoinedAt time.Time `db:"joined_at" json:"joinedAt"`
}

func (s *Server) ListClassrooms(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	classrooms := []models.Classroom{}
	var err error
	if user.Role == models.RoleTeacher {
		err = s.DB.Select(&classrooms, `
SELECT id, name, description, subject, code, cover_image, is_active, teacher_id, created_at, updated_at
FROM classrooms
WHERE teacher_id = $1
LIMIT 100
`, user.ID)
	} else {
		err = s.DB.Select(&classrooms, `
SELECT c.id, c.name, c.description, c.subject, c.code, c.cover_image, c.is_active, c.teacher_id, c.created_at, c.updated_at
FROM classrooms c
JOIN enrollments e ON e.classroom_id = c.id
WHERE e.student_id = $1
LIMIT 100
`, user.ID)
	}
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	items := make([]ClassroomDTO, 0, len(classrooms))
	for _, classroom := range classrooms {
		dto, err := enrichClassroomDTO(s.DB, classroom)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		items = append(items, dto)
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) CreateClassroom(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	if user.Role != models.RoleTeacher {
		WriteError(w, http.StatusForbidden, "Only teachers can create classrooms")
		return
	}
	var req ClassroomCreateRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	code, err := services.ResolveClassCode(s.DB)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	now := time.Now().UTC()
	classroom := models.Classroom{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
		Code:        code,
		CoverImage:  req.CoverImage,
		IsActive:    true,
		TeacherID:   user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	_, err = s.DB.Exec(`
INSERT INTO classrooms (id, name, description, subject, code, cover_image, is_active, teacher_id, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9)
`, classroom.ID, classroom.Name, classroom.Description, classroom.Subject, classroom.Code,
		classroom.CoverImage, classroom.IsActive, classroom.TeacherID, now)
	if err != nil {
		if services.IsUniqueViolation(err) {
			WriteError(w, http.StatusConflict, "Classroom code already in use")
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	dto := classroomDTO(classroom)
	dto.Count = &ClassroomCountsDTO{}
	dto.Teacher = &TeacherSummaryDTO{ID: user.ID, Name: user.Name, Email: user.Email}
	WriteJSON(w, http.StatusCreated, dto)
}

func (s *Server) GetClassroom(w http.ResponseWriter, r *http.Request) {
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
	dto, err := enrichClassroomDTO(s.DB, classroom)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, dto)
}

func (s *Server) UpdateClassroom(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	classroom, err := services.FetchClassroom(s.DB, chi.URLParam(r, "classroomId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !services.CanWriteClassroom(user, classroom) {
		WriteError(w, http.StatusForbidden, "Not authorized")
		return
	}
	var req ClassroomUpdateRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	sets := newUpdateSet()
	if req.Name != nil {
		sets.add("name", *req.Name)
	}
	if req.Description != nil {
		sets.add("description", *req.Description)
	}
	if req.Subject != nil {
		sets.add("subject", *req.Subject)
	}
	if req.CoverImage != nil {
		sets.add("cover_image", *req.CoverImage)
	}
	if req.IsActive != nil {
		sets.add("is_active", *req.IsActive)
	}
	if !sets.empty() {
		sets.add("updated_at", time.Now().UTC())
		if _, err := s.DB.Exec(sets.query("classrooms"), sets.args(classroom.ID)...); err != nil {
			WriteError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}
	updated, err := services.FetchClassroom(s.DB, classroom.ID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, classroomDTO(updated))
}

func (s *Server) DeleteClassroom(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	classroom, err := services.FetchClassroom(s.DB, chi.URLParam(r, "classroomId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !services.CanWriteClassroom(user, classroom) {
		WriteError(w, http.StatusForbidden, "Not authorized")
		return
	}
	if err := services.DeleteClassroomCascade(s.DB, classroom.ID); err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Classroom deleted"})
}

func (s *Server) JoinClassroom(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	if !services.CanJoinClassroom(user) {
		WriteError(w, http.StatusForbidden, "Only students can join classrooms")
		return
	}
	var req JoinClassroomRequest
	if err := decodeValid(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	// Codes are stored uppercase; lookup is case-insensitive.
	classroom, err := services.FetchClassroomByCode(s.DB, strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !classroom.IsActive {
		WriteError(w, http.StatusBadRequest, "Classroom is not active")
		return
	}
	enrolled, err := services.IsEnrolled(s.DB, user.ID, classroom.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if enrolled {
		WriteError(w, http.StatusBadRequest, "Already enrolled in this classroom")
		return
	}
	if _, err := services.EnrollStudent(s.DB, user.ID, classroom.ID); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]ClassroomDTO{"classroom": classroomDTO(classroom)})
}

func (s *Server) LeaveClassroom(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	if user.Role != models.RoleStudent {
		WriteError(w, http.StatusForbidden, "Only students can leave classrooms")
		return
	}
	result, err := s.DB.Exec(`
DELETE FROM enrollments WHERE student_id = $1 AND classroom_id = $2
`, user.ID, chi.URLParam(r, "classroomId"))
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if deleted, _ := result.RowsAffected(); deleted == 0 {
		WriteError(w, http.StatusNotFound, "Not enrolled in this classroom")
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Left classroom"})
}

func (s *Server) ListClassroomStudents(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser(r)
	classroom, err := services.FetchClassroom(s.DB, chi.URLParam(r, "classroomId"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !services.CanWriteClassroom(user, classroom) {
		WriteError(w, http.StatusForbidden, "Not authorized")
		return
	}
	students := []StudentDTO{}
	err = s.DB.Select(&students, `
SELECT u.id, u.email, u.name, u.avatar, e.joined_at
FROM enrollments e
JOIN users u ON u.id = e.student_id
WHERE e.classroom_id = $1
ORDER BY e.joined_at
LIMIT 100
`, classroom.ID)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	WriteJSON(w, http.StatusOK, students)
}

func classroomReadDenial(user models.User) string {
	if user.Role == models.RoleTeacher {
		return "Not authorized"
	}
	return "Not enrolled in this classroom"
}
