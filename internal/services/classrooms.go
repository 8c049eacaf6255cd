package services

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"time"

	"elearn-backend-go/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const ClassCodeLength = 6

// GenerateClassCode returns a random uppercase-alphanumeric join code.
// Uniqueness is not guaranteed here; use ResolveClassCode.
func GenerateClassCode() (string, error) {
	buf := make([]byte, ClassCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

// ResolveClassCode generates codes until one is free. The 36^6 space makes
// collisions rare but not impossible, so the existence check loops.
func ResolveClassCode(db *sqlx.DB) (string, error) {
	for {
		code, err := GenerateClassCode()
		if err != nil {
			return "", err
		}
		var exists bool
		if err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM classrooms WHERE code = $1)`, code); err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}

func FetchClassroom(db *sqlx.DB, classroomID string) (models.Classroom, error) {
	var classroom models.Classroom
	err := db.Get(&classroom, `
SELECT id, name, description, subject, code, cover_image, is_active, teacher_id, created_at, updated_at
FROM classrooms
WHERE id = $1
`, classroomID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Classroom{}, ErrNotFound("Classroom not found")
	}
	return classroom, err
}

func FetchClassroomByCode(db *sqlx.DB, code string) (models.Classroom, error) {
	var classroom models.Classroom
	err := db.Get(&classroom, `
SELECT id, name, description, subject, code, cover_image, is_active, teacher_id, created_at, updated_at
FROM classrooms
WHERE code = $1
`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Classroom{}, ErrNotFound("Invalid classroom code")
	}
	return classroom, err
}

type ClassroomCounts struct {
	Enrollments int `db:"enrollments"`
	Materials   int `db:"materials"`
}

func CountClassroomChildren(db *sqlx.DB, classroomID string) (ClassroomCounts, error) {
	var counts ClassroomCounts
	err := db.Get(&counts, `
SELECT
  (SELECT count(*) FROM enrollments WHERE classroom_id = $1) AS enrollments,
  (SELECT count(*) FROM materials WHERE classroom_id = $1) AS materials
`, classroomID)
	return counts, err
}

func EnrollStudent(db *sqlx.DB, studentID, classroomID string) (models.Enrollment, error) {
	enrollment := models.Enrollment{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		ClassroomID: classroomID,
		JoinedAt:    time.Now().UTC(),
	}
	_, err := db.Exec(`
INSERT INTO enrollments (id, student_id, classroom_id, joined_at)
VALUES ($1,$2,$3,$4)
`, enrollment.ID, enrollment.StudentID, enrollment.ClassroomID, enrollment.JoinedAt)
	if IsUniqueViolation(err) {
		return models.Enrollment{}, ErrConflict("Already enrolled in this classroom")
	}
	return enrollment, err
}

// DeleteClassroomCascade removes children before the classroom itself so a
// partial failure never leaves enrollments or materials outliving the parent.
// The three statements are independent; there is no cross-table transaction.
func DeleteClassroomCascade(db *sqlx.DB, classroomID string) error {
	if _, err := db.Exec(`DELETE FROM enrollments WHERE classroom_id = $1`, classroomID); err != nil {
		return err
	}
	if _, err := db.Exec(`DELETE FROM materials WHERE classroom_id = $1`, classroomID); err != nil {
		return err
	}
	_, err := db.Exec(`DELETE FROM classrooms WHERE id = $1`, classroomID)
	return err
}
