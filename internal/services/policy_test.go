package services

import (
	"testing"

	"elearn-backend-go/internal/models"
)

var (
	owner    = models.User{ID: "t1", Role: models.RoleTeacher}
	stranger = models.User{ID: "t2", Role: models.RoleTeacher}
	student  = models.User{ID: "s1", Role: models.RoleStudent}
	room     = models.Classroom{ID: "c1", TeacherID: "t1"}
)

func TestCanReadClassroom(t *testing.T) {
	tests := []struct {
		name     string
		user     models.User
		enrolled bool
		want     bool
	}{
		{name: "owning teacher", user: owner, want: true},
		{name: "other teacher", user: stranger, want: false},
		{name: "enrolled student", user: student, enrolled: true, want: true},
		{name: "unenrolled student", user: student, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReadClassroom(tt.user, room, tt.enrolled); got != tt.want {
				t.Errorf("CanReadClassroom() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanWriteClassroom(t *testing.T) {
	if !CanWriteClassroom(owner, room) {
		t.Error("owner denied write")
	}
	if CanWriteClassroom(stranger, room) {
		t.Error("non-owning teacher allowed write")
	}
	if CanWriteClassroom(student, room) {
		t.Error("student allowed write")
	}
}

func TestCanReadMaterial(t *testing.T) {
	published := models.Material{ID: "m1", ClassroomID: "c1", IsPublished: true}
	draft := models.Material{ID: "m2", ClassroomID: "c1", IsPublished: false}

	tests := []struct {
		name     string
		user     models.User
		material models.Material
		enrolled bool
		want     bool
	}{
		{name: "owner reads draft", user: owner, material: draft, want: true},
		{name: "owner reads published", user: owner, material: published, want: true},
		{name: "other teacher denied", user: stranger, material: published, want: false},
		{name: "enrolled student reads published", user: student, material: published, enrolled: true, want: true},
		{name: "enrolled student denied draft", user: student, material: draft, enrolled: true, want: false},
		{name: "unenrolled student denied", user: student, material: published, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReadMaterial(tt.user, tt.material, room, tt.enrolled); got != tt.want {
				t.Errorf("CanReadMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanWriteMaterial(t *testing.T) {
	if !CanWriteMaterial(owner, room) {
		t.Error("owner denied material write")
	}
	if CanWriteMaterial(stranger, room) {
		t.Error("non-owning teacher allowed material write")
	}
	if CanWriteMaterial(student, room) {
		t.Error("student allowed material write")
	}
}

func TestCanJoinClassroom(t *testing.T) {
	if !CanJoinClassroom(student) {
		t.Error("student denied join")
	}
	if CanJoinClassroom(owner) {
		t.Error("teacher allowed join")
	}
}
