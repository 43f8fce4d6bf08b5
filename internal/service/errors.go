package service

import "errors"

// Sentinel errors for the quiz workflow. Controllers map these to HTTP
// statuses with errors.Is; services wrap them with context via fmt.Errorf.
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrNotEnrolled    = errors.New("user is not enrolled in this course")
	ErrNoQuestions    = errors.New("lesson has no questions")
)
