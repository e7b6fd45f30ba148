package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/service"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	sessionService service.SessionService
	pathwayService service.PathwayService
}

func NewSessionController(sessionService service.SessionService, pathwayService service.PathwayService) *SessionController {
	return &SessionController{sessionService: sessionService, pathwayService: pathwayService}
}

// CreateSession godoc
// @Summary (User) Start a new assessment session
// @Description Creates a session in IN_PROGRESS status. Answers are then submitted one at a time against it.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param session_data body dto.SessionCreateDTO true "User ID, optional test ID and session name"
// @Success 201 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.SessionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User CreateSession: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	session, err := c.sessionService.CreateSession(req)
	if err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("User CreateSession: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create session", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, session)
}

// SubmitAnswer godoc
// @Summary (User) Submit or change one answer
// @Description Grades the answer and stores it. Resubmitting the same question overwrites the previous answer. Only IN_PROGRESS sessions accept answers.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID (UUID)"
// @Param answer_data body dto.AnswerSubmitDTO true "Question ID and the selection for its question type"
// @Success 200 {object} dto.AnswerResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unsupported question type"
// @Failure 404 {object} dto.ErrorResponse "Session or question not found"
// @Failure 409 {object} dto.ErrorResponse "Session no longer accepts answers"
// @Router /sessions/{session_id}/answers [post]
func (c *SessionController) SubmitAnswer(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	var req dto.AnswerSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Str("sessionID", sessionID).Msg("User SubmitAnswer: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.sessionService.SubmitAnswer(sessionID, req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to submit answer")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// BulkSubmit godoc
// @Summary (User) Submit a full response set in one call
// @Description Creates a session directly in SUBMITTED status, grades every response and computes scores atomically.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param submission_data body dto.BulkSubmitDTO true "User ID, optional test ID and the full list of responses"
// @Success 201 {object} dto.BulkSubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unsupported question type"
// @Failure 404 {object} dto.ErrorResponse "A referenced question does not exist"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/submit [post]
func (c *SessionController) BulkSubmit(ctx *gin.Context) {
	var req dto.BulkSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User BulkSubmit: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	result, err := c.sessionService.BulkSubmit(req)
	if err != nil {
		respondServiceError(ctx, err, "Failed to submit responses")
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// CompleteSession godoc
// @Summary (User) Complete a session
// @Description Marks the session COMPLETED and recomputes its score snapshot. Completing an already completed session recomputes and succeeds.
// @Tags User - Sessions
// @Produce json
// @Param session_id path string true "Session ID (UUID)"
// @Success 200 {object} dto.CompleteResultDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{session_id}/complete [post]
func (c *SessionController) CompleteSession(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	result, err := c.sessionService.CompleteSession(sessionID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to complete session")
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetSession godoc
// @Summary (User) Get a session with answers and scores
// @Tags User - Sessions
// @Produce json
// @Param session_id path string true "Session ID (UUID)"
// @Success 200 {object} dto.SessionDetailDTO
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	session, err := c.sessionService.GetSession(sessionID)
	if err != nil {
		respondServiceError(ctx, err, "Failed to retrieve session")
		return
	}
	ctx.JSON(http.StatusOK, session)
}

// DeleteSession godoc
// @Summary (User) Delete a session
// @Description Removes the session together with its answers and score records.
// @Tags User - Sessions
// @Produce json
// @Param session_id path string true "Session ID (UUID)"
// @Success 200 {object} map[string]string
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	if err := c.sessionService.DeleteSession(sessionID); err != nil {
		respondServiceError(ctx, err, "Failed to delete session")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "success", "message": "Session deleted"})
}

// GetPathways godoc
// @Summary (User) Get ranked pathway recommendations for a session
// @Description Returns the session's clusters ranked by correct answers, decorated with pathway catalog metadata. Default limit is 3.
// @Tags User - Sessions
// @Produce json
// @Param session_id path string true "Session ID (UUID)"
// @Param limit query int false "Maximum number of pathways to return (default 3)"
// @Success 200 {array} dto.PathwayViewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid limit"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /sessions/{session_id}/pathways [get]
func (c *SessionController) GetPathways(ctx *gin.Context) {
	sessionID := ctx.Param("session_id")

	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		val, err := strconv.Atoi(limitStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid limit format"})
			return
		}
		limit = val
	}

	pathways, err := c.pathwayService.TopPathways(sessionID, limit)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("User GetPathways: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve pathways", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, pathways)
}

// GetUserSessions godoc
// @Summary (User) List a user's sessions
// @Description Most recent first, each with its overall score when one has been computed.
// @Tags User - Sessions
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {array} dto.SessionSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/sessions [get]
func (c *SessionController) GetUserSessions(ctx *gin.Context) {
	userID := ctx.Param("user_id")

	sessions, err := c.sessionService.GetUserSessions(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("User GetUserSessions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve sessions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, sessions)
}

// respondServiceError maps the service sentinel errors onto HTTP statuses.
func respondServiceError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrQuestionNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrSessionNotActive):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, service.ErrUnsupportedQuestionType):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
	default:
		log.Error().Err(err).Msg(fallback)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback, Details: []string{err.Error()}})
	}
}
