package testutil

import (
	"fmt"
	"testing"

	"github.com/qazfinance/academy/internal/model"
	"gorm.io/gorm"
)

// SeedUser creates a user with a unique email.
func SeedUser(tb testing.TB, db *gorm.DB, name string) *model.User {
	tb.Helper()

	user := model.User{
		Email:    fmt.Sprintf("%s@example.com", name),
		FullName: name,
	}
	if err := db.Create(&user).Error; err != nil {
		tb.Fatalf("seeding user %s: %v", name, err)
	}
	return &user
}

// SeedCourse creates a course with a single unit and returns it with the
// unit loaded.
func SeedCourse(tb testing.TB, db *gorm.DB, slug string, published bool) *model.Course {
	tb.Helper()

	course := model.Course{
		Title:     slug,
		Slug:      slug,
		Published: published,
		Units: []model.Unit{
			{Title: slug + " unit 1", Order: 1},
		},
	}
	if err := db.Create(&course).Error; err != nil {
		tb.Fatalf("seeding course %s: %v", slug, err)
	}
	return &course
}

// SeedQuizLesson creates a lesson under the unit with numQuestions
// questions of three choices each; the second choice of every question is
// the correct one. The returned lesson carries the full question/choice
// tree with database IDs assigned.
func SeedQuizLesson(tb testing.TB, db *gorm.DB, unitID uint, order, numQuestions int) *model.Lesson {
	tb.Helper()

	lesson := model.Lesson{
		UnitID: unitID,
		Title:  fmt.Sprintf("Lesson %d", order),
		Order:  order,
		Theory: "<p>theory</p>",
	}
	for q := 1; q <= numQuestions; q++ {
		lesson.Questions = append(lesson.Questions, model.Question{
			Text:  fmt.Sprintf("Question %d", q),
			Order: q,
			Choices: []model.Choice{
				{Text: "A"},
				{Text: "B", IsCorrect: true},
				{Text: "C"},
			},
		})
	}
	if err := db.Create(&lesson).Error; err != nil {
		tb.Fatalf("seeding lesson %d: %v", order, err)
	}
	return &lesson
}

// SeedEnrollment enrolls the user in the course.
func SeedEnrollment(tb testing.TB, db *gorm.DB, userID, courseID uint) *model.Enrollment {
	tb.Helper()

	enrollment := model.Enrollment{UserID: userID, CourseID: courseID}
	if err := db.Create(&enrollment).Error; err != nil {
		tb.Fatalf("seeding enrollment user=%d course=%d: %v", userID, courseID, err)
	}
	return &enrollment
}

// CorrectChoiceID returns the ID of the choice flagged correct.
func CorrectChoiceID(tb testing.TB, question model.Question) uint {
	tb.Helper()
	for _, choice := range question.Choices {
		if choice.IsCorrect {
			return choice.ID
		}
	}
	tb.Fatalf("question %d has no correct choice", question.ID)
	return 0
}

// WrongChoiceID returns the ID of a choice not flagged correct.
func WrongChoiceID(tb testing.TB, question model.Question) uint {
	tb.Helper()
	for _, choice := range question.Choices {
		if !choice.IsCorrect {
			return choice.ID
		}
	}
	tb.Fatalf("question %d has no wrong choice", question.ID)
	return 0
}
