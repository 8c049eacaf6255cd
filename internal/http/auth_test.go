package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"elearn-backend-go/internal/models"
)

func requestWithUser(user models.User) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(context.WithValue(req.Context(), ctxUser, user))
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole(models.RoleTeacher)(next)

	tests := []struct {
		name       string
		user       models.User
		wantStatus int
	}{
		{name: "teacher passes", user: models.User{ID: "t1", Role: models.RoleTeacher}, wantStatus: http.StatusOK},
		{name: "student rejected", user: models.User{ID: "s1", Role: models.RoleStudent}, wantStatus: http.StatusForbidden},
		{name: "missing user rejected", user: models.User{}, wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, requestWithUser(tt.user))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestCurrentUserMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if user := CurrentUser(req); user.ID != "" {
		t.Errorf("CurrentUser() on bare request = %+v, want zero value", user)
	}
}

func TestClassroomReadDenialMessage(t *testing.T) {
	if got := classroomReadDenial(models.User{Role: models.RoleTeacher}); got != "Not authorized" {
		t.Errorf("teacher denial = %q", got)
	}
	if got := classroomReadDenial(models.User{Role: models.RoleStudent}); got != "Not enrolled in this classroom" {
		t.Errorf("student denial = %q", got)
	}
}
