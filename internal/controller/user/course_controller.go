package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qazfinance/academy/internal/dto"
	"github.com/qazfinance/academy/internal/service"
	"github.com/rs/zerolog/log"
)

type CourseController struct {
	courseService     service.CourseService
	enrollmentService service.EnrollmentService
}

func NewCourseController(courseService service.CourseService, enrollmentService service.EnrollmentService) *CourseController {
	return &CourseController{courseService: courseService, enrollmentService: enrollmentService}
}

// GetAllCourses godoc
// @Summary List published courses
// @Tags Courses
// @Produce json
// @Success 200 {array} dto.CourseSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses()
	if err != nil {
		log.Error().Err(err).Msg("GetAllCourses: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve courses"})
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourseDetail godoc
// @Summary Get a course with its units and lessons
// @Description Returns the ordered unit/lesson tree. Pass user_id to include enrollment state and per-lesson progress.
// @Tags Courses
// @Produce json
// @Param slug path string true "Course slug"
// @Param user_id query int false "User ID for enrollment and progress info"
// @Success 200 {object} dto.CourseDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{slug} [get]
func (c *CourseController) GetCourseDetail(ctx *gin.Context) {
	slug := ctx.Param("slug")

	userID, ok := optionalUserID(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseDetail(slug, userID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to retrieve course")
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// Enroll godoc
// @Summary Enroll a user in a course
// @Description Idempotent: enrolling an already-enrolled user returns the existing enrollment.
// @Tags Courses
// @Accept json
// @Produce json
// @Param slug path string true "Course slug"
// @Param enrollment body dto.EnrollRequest true "User to enroll"
// @Success 200 {object} dto.EnrollmentDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{slug}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	slug := ctx.Param("slug")

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	enrollment, err := c.enrollmentService.Enroll(req.UserID, slug)
	if err != nil {
		respondServiceError(ctx, err, "Failed to enroll")
		return
	}
	ctx.JSON(http.StatusOK, enrollment)
}

// GetLesson godoc
// @Summary Get lesson content and its quiz
// @Description Requires enrollment in the owning course. Choice correctness is never exposed.
// @Tags Lessons
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.LessonDetailDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "User not enrolled"
// @Failure 404 {object} dto.ErrorResponse
// @Router /lessons/{lesson_id} [get]
func (c *CourseController) GetLesson(ctx *gin.Context) {
	lessonID, ok := pathID(ctx, "lesson_id")
	if !ok {
		return
	}
	userID, ok := requiredUserID(ctx)
	if !ok {
		return
	}

	lesson, err := c.courseService.GetLessonForUser(userID, lessonID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to retrieve lesson")
		return
	}
	ctx.JSON(http.StatusOK, lesson)
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

func optionalUserID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		return 0, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id format"})
		return 0, false
	}
	return uint(val), true
}

func requiredUserID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("user_id")
	if raw == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "user_id query parameter is required"})
		return 0, false
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid user_id format"})
		return 0, false
	}
	return uint(val), true
}

// respondServiceError maps the service sentinel errors onto HTTP statuses.
// Anything unrecognized is treated as a transient store failure: the whole
// submission was rolled back and the caller may retry.
func respondServiceError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrLessonNotFound),
		errors.Is(err, service.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrNotEnrolled):
		ctx.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "Enroll in the course before accessing its lessons"})
	case errors.Is(err, service.ErrNoQuestions):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: "This lesson has no quiz questions yet"})
	default:
		log.Error().Err(err).Msg(fallback)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	}
}
