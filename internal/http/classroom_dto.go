package httpapi

import (
	"time"

	"elearn-backend-go/internal/models"
	"elearn-backend-go/internal/services"

	"github.com/jmoiron/sqlx"
)

type TeacherSummaryDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ClassroomCountsDTO struct {
	Enrollments int `json:"enrollments"`
	Materials   int `json:"materials"`
}

type ClassroomDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	Subject     string              `json:"subject"`
	Code        string              `json:"code"`
	CoverImage  *string             `json:"coverImage"`
	IsActive    bool                `json:"isActive"`
	TeacherID   string              `json:"teacherId"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Count       *ClassroomCountsDTO `json:"_count,omitempty"`
	Teacher     *TeacherSummaryDTO  `json:"teacher,omitempty"`
}

func classroomDTO(classroom models.Classroom) ClassroomDTO {
	return ClassroomDTO{
		ID:          classroom.ID,
		Name:        classroom.Name,
		Description: classroom.Description,
		Subject:     classroom.Subject,
		Code:        classroom.Code,
		CoverImage:  classroom.CoverImage,
		IsActive:    classroom.IsActive,
		TeacherID:   classroom.TeacherID,
		CreatedAt:   classroom.CreatedAt,
		UpdatedAt:   classroom.UpdatedAt,
	}
}

// enrichClassroomDTO attaches live child counts and the owning teacher
// summary.
func enrichClassroomDTO(db *sqlx.DB, classroom models.Classroom) (ClassroomDTO, error) {
	dto := classroomDTO(classroom)
	counts, err := services.CountClassroomChildren(db, classroom.ID)
	if err != nil {
		return ClassroomDTO{}, err
	}
	dto.Count = &ClassroomCountsDTO{Enrollments: counts.Enrollments, Materials: counts.Materials}
	teacher, err := services.FetchUser(db, classroom.TeacherID)
	if err == nil {
		dto.Teacher = &TeacherSummaryDTO{ID: teacher.ID, Name: teacher.Name, Email: teacher.Email}
	}
	return dto, nil
}
