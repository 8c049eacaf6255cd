package services

import (
	"elearn-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

// Access decisions are pure functions over already-loaded records; callers
// resolve enrollment state first (IsEnrolled) and check resource existence
// before asking for a decision, so NotFound always wins over Forbidden.

func CanReadClassroom(user models.User, classroom models.Classroom, enrolled bool) bool {
	if user.Role == models.RoleTeacher {
		return classroom.TeacherID == user.ID
	}
	return enrolled
}

func CanWriteClassroom(user models.User, classroom models.Classroom) bool {
	return user.Role == models.RoleTeacher && classroom.TeacherID == user.ID
}

func CanReadMaterial(user models.User, material models.Material, classroom models.Classroom, enrolled bool) bool {
	if user.Role == models.RoleTeacher {
		return classroom.TeacherID == user.ID
	}
	return enrolled && material.IsPublished
}

func CanWriteMaterial(user models.User, classroom models.Classroom) bool {
	return user.Role == models.RoleTeacher && classroom.TeacherID == user.ID
}

func CanJoinClassroom(user models.User) bool {
	return user.Role == models.RoleStudent
}

func IsEnrolled(db *sqlx.DB, studentID, classroomID string) (bool, error) {
	var exists bool
	err := db.Get(&exists, `
SELECT EXISTS(
  SELECT 1 FROM enrollments WHERE student_id = $1 AND classroom_id = $2
)
`, studentID, classroomID)
	return exists, err
}
