package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/qazfinance/academy/internal/dto"
	"github.com/qazfinance/academy/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminCourseController struct {
	adminCourseService service.AdminCourseService
}

func NewAdminCourseController(adminCourseService service.AdminCourseService) *AdminCourseController {
	return &AdminCourseController{adminCourseService: adminCourseService}
}

// CreateCourse godoc
// @Summary (Admin) Create a course with nested units, lessons, questions and choices
// @Description Orders must be unique within their parent and each question may have at most one correct choice.
// @Tags Admin - Courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course tree"
// @Success 201 {object} dto.AdminCourseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/courses [post]
func (c *AdminCourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateCourse: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	course, err := c.adminCourseService.CreateCourse(req)
	if err != nil {
		log.Error().Err(err).Str("slug", req.Slug).Msg("Admin CreateCourse: service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create course", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// DeleteCourse godoc
// @Summary (Admin) Delete a course and its catalog tree
// @Description Units, lessons, questions and choices are removed with the course. Attempt and progress history is kept.
// @Tags Admin - Courses
// @Produce json
// @Param course_id path int true "Course ID"
// @Success 204 "Deleted"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/courses/{course_id} [delete]
func (c *AdminCourseController) DeleteCourse(ctx *gin.Context) {
	raw := ctx.Param("course_id")
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid course_id format"})
		return
	}

	if err := c.adminCourseService.DeleteCourse(uint(val)); err != nil {
		if errors.Is(err, service.ErrCourseNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete course", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}
