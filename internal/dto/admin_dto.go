package dto

// ChoiceCreateDTO is used within nested course creation. At most one choice
// per question may set IsCorrect; the admin service rejects the payload
// otherwise.
type ChoiceCreateDTO struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionCreateDTO struct {
	Text    string            `json:"text" binding:"required"`
	Order   int               `json:"order" binding:"required,min=1"`
	Choices []ChoiceCreateDTO `json:"choices" binding:"omitempty,dive"`
}

type LessonCreateDTO struct {
	Title      string              `json:"title" binding:"required"`
	Order      int                 `json:"order" binding:"required,min=1"`
	Objectives string              `json:"objectives"`
	Theory     string              `json:"theory"`
	CaseStudy  string              `json:"case_study"`
	Summary    string              `json:"summary"`
	Questions  []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

type UnitCreateDTO struct {
	Title   string            `json:"title" binding:"required"`
	Order   int               `json:"order" binding:"required,min=1"`
	Lessons []LessonCreateDTO `json:"lessons" binding:"omitempty,dive"`
}

// CourseCreateDTO lets an admin create a whole course tree in one call.
type CourseCreateDTO struct {
	Title       string          `json:"title" binding:"required"`
	Slug        string          `json:"slug" binding:"required"`
	Description string          `json:"description"`
	Published   *bool           `json:"published"`
	Units       []UnitCreateDTO `json:"units" binding:"omitempty,dive"`
}

// Admin responses include the full created tree with IDs and correctness
// flags, unlike the learner-facing DTOs.
type AdminChoiceDTO struct {
	ID        uint   `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type AdminQuestionDTO struct {
	ID      uint             `json:"id"`
	Text    string           `json:"text"`
	Order   int              `json:"order"`
	Choices []AdminChoiceDTO `json:"choices"`
}

type AdminLessonDTO struct {
	ID        uint               `json:"id"`
	Title     string             `json:"title"`
	Order     int                `json:"order"`
	Questions []AdminQuestionDTO `json:"questions"`
}

type AdminUnitDTO struct {
	ID      uint             `json:"id"`
	Title   string           `json:"title"`
	Order   int              `json:"order"`
	Lessons []AdminLessonDTO `json:"lessons"`
}

type AdminCourseDTO struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug"`
	Description string         `json:"description,omitempty"`
	Published   bool           `json:"published"`
	Units       []AdminUnitDTO `json:"units"`
}
