package services

import (
	"database/sql"
	"errors"
	"strings"

	"elearn-backend-go/internal/models"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, email, password_hash, name, role, avatar, created_at, updated_at`

func FetchUser(db *sqlx.DB, userID string) (models.User, error) {
	var user models.User
	err := db.Get(&user, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound("User not found")
	}
	return user, err
}

func FetchUserByEmail(db *sqlx.DB, email string) (models.User, error) {
	var user models.User
	err := db.Get(&user, `SELECT `+userColumns+` FROM users WHERE lower(email) = $1`, NormalizeEmail(email))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound("User not found")
	}
	return user, err
}

func EmailTaken(db *sqlx.DB, email string) (bool, error) {
	var exists bool
	err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = $1)`, NormalizeEmail(email))
	return exists, err
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidRole(role string) bool {
	return role == models.RoleTeacher || role == models.RoleStudent
}
