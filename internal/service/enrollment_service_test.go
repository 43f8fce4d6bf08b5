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

func newEnrollmentService(t *testing.T) (EnrollmentService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	svc := NewEnrollmentService(
		repository.NewCourseRepository(db),
		repository.NewUserRepository(db),
		repository.NewEnrollmentRepository(db),
	)
	return svc, db
}

func TestEnrollIsIdempotent(t *testing.T) {
	svc, db := newEnrollmentService(t)
	user := testutil.SeedUser(t, db, "learner")
	course := testutil.SeedCourse(t, db, "go-basics", true)

	first, err := svc.Enroll(user.ID, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, user.ID, first.UserID)
	assert.Equal(t, course.ID, first.CourseID)

	second, err := svc.Enroll(user.ID, course.Slug)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.Enrollment{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	enrolled, err := svc.IsEnrolled(user.ID, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)
}

func TestEnrollCourseNotFound(t *testing.T) {
	svc, db := newEnrollmentService(t)
	user := testutil.SeedUser(t, db, "learner")

	_, err := svc.Enroll(user.ID, "no-such-course")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCourseNotFound))
}

func TestEnrollUnpublishedCourseHidden(t *testing.T) {
	svc, db := newEnrollmentService(t)
	user := testutil.SeedUser(t, db, "learner")
	course := testutil.SeedCourse(t, db, "draft-course", false)

	// Unpublished courses are invisible to enrollment.
	_, err := svc.Enroll(user.ID, course.Slug)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCourseNotFound))
}

func TestEnrollUserNotFound(t *testing.T) {
	svc, db := newEnrollmentService(t)
	testutil.SeedCourse(t, db, "go-basics", true)

	_, err := svc.Enroll(999, "go-basics")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUserNotFound))
}
