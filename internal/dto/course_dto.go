package dto

import "time"

// CourseSummaryDTO is used for listing published courses.
type CourseSummaryDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CourseDetailDTO is the course page payload: ordered units and lessons plus
// the requesting user's enrollment state and per-lesson progress.
type CourseDetailDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Enrolled    bool      `json:"enrolled"`
	Units       []UnitDTO `json:"units"`
}

type UnitDTO struct {
	ID      uint               `json:"id"`
	Title   string             `json:"title"`
	Order   int                `json:"order"`
	Lessons []LessonSummaryDTO `json:"lessons"`
}

type LessonSummaryDTO struct {
	ID       uint         `json:"id"`
	Title    string       `json:"title"`
	Order    int          `json:"order"`
	Progress *ProgressDTO `json:"progress,omitempty"`
}

// LessonDetailDTO carries lesson content and the quiz questions. Choice
// correctness flags are deliberately absent from the user-facing shape.
type LessonDetailDTO struct {
	ID         uint          `json:"id"`
	UnitID     uint          `json:"unit_id"`
	Title      string        `json:"title"`
	Order      int           `json:"order"`
	Objectives string        `json:"objectives,omitempty"`
	Theory     string        `json:"theory,omitempty"`
	CaseStudy  string        `json:"case_study,omitempty"`
	Summary    string        `json:"summary,omitempty"`
	Questions  []QuestionDTO `json:"questions"`
	Progress   *ProgressDTO  `json:"progress,omitempty"`
}

type QuestionDTO struct {
	ID      uint        `json:"id"`
	Text    string      `json:"text"`
	Order   int         `json:"order"`
	Choices []ChoiceDTO `json:"choices"`
}

type ChoiceDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// EnrollRequest identifies the enrolling user; authentication lives in
// front of this API.
type EnrollRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type EnrollmentDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	CourseID  uint      `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}
