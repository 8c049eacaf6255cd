package models

import "time"

const (
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
)

const (
	MaterialText    = "TEXT"
	MaterialFile    = "FILE"
	MaterialVideo   = "VIDEO"
	MaterialModel3D = "MODEL3D"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	Avatar       *string   `db:"avatar"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Classroom struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Subject     string    `db:"subject"`
	Code        string    `db:"code"`
	CoverImage  *string   `db:"cover_image"`
	IsActive    bool      `db:"is_active"`
	TeacherID   string    `db:"teacher_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Enrollment struct {
	ID          string    `db:"id"`
	StudentID   string    `db:"student_id"`
	ClassroomID string    `db:"classroom_id"`
	JoinedAt    time.Time `db:"joined_at"`
}

// Material holds one payload column per material type; only the column
// matching Type is expected to be set.
type Material struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description *string   `db:"description"`
	Type        string    `db:"type"`
	Content     *string   `db:"content"`
	FileURL     *string   `db:"file_url"`
	FileName    *string   `db:"file_name"`
	VideoURL    *string   `db:"video_url"`
	ModelURL    *string   `db:"model_url"`
	AREnabled   bool      `db:"ar_enabled"`
	ModelScale  float64   `db:"model_scale"`
	SortOrder   int       `db:"sort_order"`
	IsPublished bool      `db:"is_published"`
	ClassroomID string    `db:"classroom_id"`
	CreatedByID string    `db:"created_by_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type ServerMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"captured_at"`
	HeapUsedBytes     int64     `db:"heap_used_bytes"`
	HeapMaxBytes      int64     `db:"heap_max_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
}
