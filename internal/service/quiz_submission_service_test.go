package service

import (
	"errors"
	"testing"

	"github.com/qazfinance/academy/internal/model"
	"github.com/qazfinance/academy/internal/repository"
	"github.com/qazfinance/academy/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type quizStack struct {
	db       *gorm.DB
	svc      QuizSubmissionService
	userRepo repository.UserRepository
}

func newQuizStack(t *testing.T) *quizStack {
	t.Helper()

	db := testutil.DB(t)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	userRepo := repository.NewUserRepository(db)

	svc := NewQuizSubmissionService(
		courseRepo,
		lessonRepo,
		enrollmentRepo,
		attemptRepo,
		progressRepo,
		NewScoringService(),
		NewRatingService(progressRepo, userRepo),
		db,
	)
	return &quizStack{db: db, svc: svc, userRepo: userRepo}
}

// answersFor builds a submission answering the first `correct` questions
// correctly and the next `wrong` questions incorrectly; the rest stay
// unanswered.
func answersFor(t *testing.T, lesson *model.Lesson, correct, wrong int) map[uint]uint {
	t.Helper()

	answers := make(map[uint]uint)
	for i, question := range lesson.Questions {
		switch {
		case i < correct:
			answers[question.ID] = testutil.CorrectChoiceID(t, question)
		case i < correct+wrong:
			answers[question.ID] = testutil.WrongChoiceID(t, question)
		}
	}
	return answers
}

func TestSubmitQuizLifecycle(t *testing.T) {
	stack := newQuizStack(t)
	user := testutil.SeedUser(t, stack.db, "learner")
	course := testutil.SeedCourse(t, stack.db, "go-basics", true)
	lesson := testutil.SeedQuizLesson(t, stack.db, course.Units[0].ID, 1, 4)
	testutil.SeedEnrollment(t, stack.db, user.ID, course.ID)

	// First submission: 2 correct, 1 wrong, 1 unanswered.
	result, err := stack.svc.SubmitQuiz(user.ID, lesson.ID, answersFor(t, lesson, 2, 1))
	require.NoError(t, err)

	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, 50.0, result.Progress.BestScore)
	assert.Equal(t, 50.0, result.Progress.LastScore)
	assert.False(t, result.Progress.Completed)
	assert.Equal(t, 50.0, result.Rating)
	assert.NotZero(t, result.AttemptID)

	// Second submission: everything correct. Best score climbs and the
	// lesson flips to completed.
	result, err = stack.svc.SubmitQuiz(user.ID, lesson.ID, answersFor(t, lesson, 4, 0))
	require.NoError(t, err)

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, 100.0, result.Progress.BestScore)
	assert.True(t, result.Progress.Completed)
	assert.Equal(t, 100.0, result.Rating)

	// Third submission scores lower. Last score follows it, best score and
	// completion do not regress.
	result, err = stack.svc.SubmitQuiz(user.ID, lesson.ID, answersFor(t, lesson, 2, 2))
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, 50.0, result.Progress.LastScore)
	assert.Equal(t, 100.0, result.Progress.BestScore)
	assert.True(t, result.Progress.Completed)
	assert.Equal(t, 100.0, result.Rating)

	// The ledger holds one row per submission; progress stays a single row.
	var attemptCount, progressCount int64
	require.NoError(t, stack.db.Model(&model.LessonAttempt{}).Where("user_id = ?", user.ID).Count(&attemptCount).Error)
	require.NoError(t, stack.db.Model(&model.LessonProgress{}).Where("user_id = ?", user.ID).Count(&progressCount).Error)
	assert.EqualValues(t, 3, attemptCount)
	assert.EqualValues(t, 1, progressCount)

	// Rating was persisted on the user row, not just returned.
	stored, err := stack.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, stored.Rating)
}

func TestSubmitQuizRatingAveragesAcrossLessons(t *testing.T) {
	stack := newQuizStack(t)
	user := testutil.SeedUser(t, stack.db, "learner")
	course := testutil.SeedCourse(t, stack.db, "go-basics", true)
	lesson1 := testutil.SeedQuizLesson(t, stack.db, course.Units[0].ID, 1, 4)
	lesson2 := testutil.SeedQuizLesson(t, stack.db, course.Units[0].ID, 2, 5)
	testutil.SeedEnrollment(t, stack.db, user.ID, course.ID)

	result, err := stack.svc.SubmitQuiz(user.ID, lesson1.ID, answersFor(t, lesson1, 4, 0))
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Rating)

	// 2 of 5 correct on the second lesson: best scores 100 and 40 average
	// to 70.
	result, err = stack.svc.SubmitQuiz(user.ID, lesson2.ID, answersFor(t, lesson2, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 40.0, result.Score)
	assert.Equal(t, 70.0, result.Rating)

	stored, err := stack.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 70.0, stored.Rating)
}

func TestSubmitQuizNotEnrolled(t *testing.T) {
	stack := newQuizStack(t)
	user := testutil.SeedUser(t, stack.db, "outsider")
	course := testutil.SeedCourse(t, stack.db, "go-basics", true)
	lesson := testutil.SeedQuizLesson(t, stack.db, course.Units[0].ID, 1, 4)

	_, err := stack.svc.SubmitQuiz(user.ID, lesson.ID, answersFor(t, lesson, 4, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnrolled))

	// Rejected submissions leave no trace.
	var attemptCount, progressCount int64
	require.NoError(t, stack.db.Model(&model.LessonAttempt{}).Count(&attemptCount).Error)
	require.NoError(t, stack.db.Model(&model.LessonProgress{}).Count(&progressCount).Error)
	assert.Zero(t, attemptCount)
	assert.Zero(t, progressCount)
}

func TestSubmitQuizLessonNotFound(t *testing.T) {
	stack := newQuizStack(t)
	user := testutil.SeedUser(t, stack.db, "learner")

	_, err := stack.svc.SubmitQuiz(user.ID, 4242, map[uint]uint{1: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLessonNotFound))
}

func TestSubmitQuizUnpublishedCourse(t *testing.T) {
	stack := newQuizStack(t)
	user := testutil.SeedUser(t, stack.db, "learner")
	course := testutil.SeedCourse(t, stack.db, "draft-course", false)
	lesson := testutil.SeedQuizLesson(t, stack.db, course.Units[0].ID, 1, 2)
	testutil.SeedEnrollment(t, stack.db, user.ID, course.ID)

	_, err := stack.svc.SubmitQuiz(user.ID, lesson.ID, answersFor(t, lesson, 2, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCourseNotFound))
}

func TestSubmitQuizNoQuestions(t *testing.T) {
	stack := newQuizStack(t)
	user := testutil.SeedUser(t, stack.db, "learner")
	course := testutil.SeedCourse(t, stack.db, "go-basics", true)
	lesson := testutil.SeedQuizLesson(t, stack.db, course.Units[0].ID, 1, 0)
	testutil.SeedEnrollment(t, stack.db, user.ID, course.ID)

	_, err := stack.svc.SubmitQuiz(user.ID, lesson.ID, map[uint]uint{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoQuestions))

	var attemptCount int64
	require.NoError(t, stack.db.Model(&model.LessonAttempt{}).Count(&attemptCount).Error)
	assert.Zero(t, attemptCount)
}

func TestGetUserAttemptsForLesson(t *testing.T) {
	stack := newQuizStack(t)
	user := testutil.SeedUser(t, stack.db, "learner")
	course := testutil.SeedCourse(t, stack.db, "go-basics", true)
	lesson := testutil.SeedQuizLesson(t, stack.db, course.Units[0].ID, 1, 2)
	testutil.SeedEnrollment(t, stack.db, user.ID, course.ID)

	first := answersFor(t, lesson, 1, 1)
	_, err := stack.svc.SubmitQuiz(user.ID, lesson.ID, first)
	require.NoError(t, err)
	_, err = stack.svc.SubmitQuiz(user.ID, lesson.ID, answersFor(t, lesson, 2, 0))
	require.NoError(t, err)

	attempts, err := stack.svc.GetUserAttemptsForLesson(user.ID, lesson.ID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)

	// Newest first; the submitted answer map round-trips through the JSON
	// blob.
	assert.Equal(t, 100.0, attempts[0].Score)
	assert.Equal(t, 50.0, attempts[1].Score)
	assert.Equal(t, first, attempts[1].Answers)
}

func TestGetUserAttemptsForLessonEmpty(t *testing.T) {
	stack := newQuizStack(t)
	user := testutil.SeedUser(t, stack.db, "learner")

	attempts, err := stack.svc.GetUserAttemptsForLesson(user.ID, 99)
	require.NoError(t, err)
	assert.Empty(t, attempts)
}
