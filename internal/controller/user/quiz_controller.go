package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qazfinance/academy/internal/dto"
	"github.com/qazfinance/academy/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	submissionService service.QuizSubmissionService
}

func NewQuizController(submissionService service.QuizSubmissionService) *QuizController {
	return &QuizController{submissionService: submissionService}
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for a lesson
// @Description Scores the submission, appends an attempt record, updates best/last progress and recomputes the user rating, all atomically. Resubmitting is allowed; every submission creates a new attempt.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Param submission body dto.SubmitQuizRequest true "User ID and question->choice answers"
// @Success 200 {object} dto.QuizResultDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse "User not enrolled in the owning course"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Failure 422 {object} dto.ErrorResponse "Lesson has no questions"
// @Failure 500 {object} dto.ErrorResponse "Transient store failure; safe to retry"
// @Router /lessons/{lesson_id}/attempts [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	lessonID, ok := pathID(ctx, "lesson_id")
	if !ok {
		return
	}

	var req dto.SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.submissionService.SubmitQuiz(req.UserID, lessonID, req.Answers)
	if err != nil {
		respondServiceError(ctx, err, "Failed to process submission")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetMyAttempts godoc
// @Summary List a user's attempts for a lesson
// @Tags Quiz
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Param user_id query int true "User ID"
// @Success 200 {array} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /lessons/{lesson_id}/my-attempts [get]
func (c *QuizController) GetMyAttempts(ctx *gin.Context) {
	lessonID, ok := pathID(ctx, "lesson_id")
	if !ok {
		return
	}
	userID, ok := requiredUserID(ctx)
	if !ok {
		return
	}

	attempts, err := c.submissionService.GetUserAttemptsForLesson(userID, lessonID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to retrieve attempts")
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}
