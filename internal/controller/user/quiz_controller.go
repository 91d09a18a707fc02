package user

import (
	"net/http"

	"github.com/celebra-rh/assessment-gateway/internal/controller"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/celebra-rh/assessment-gateway/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// QuizController exposes the participant-facing quiz flow: loading a session
// from a shared link token, the one-time info step, answering, navigation and
// the rendered result page.
type QuizController struct {
	sessionSvc service.SessionService
	resultSvc  service.ResultService
}

func NewQuizController(sessionSvc service.SessionService, resultSvc service.ResultService) *QuizController {
	return &QuizController{sessionSvc: sessionSvc, resultSvc: resultSvc}
}

// StartSession godoc
// @Summary Open a quiz session for a test link
// @Description Loads the ordered question list and link metadata for a token. Invalid, expired or already used tokens answer with the upstream message and no question list.
// @Tags sessions
// @Accept json
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param session body dto.StartSessionRequest true "Link token"
// @Success 201 {object} dto.SessionView
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or test type"
// @Failure 404 {object} dto.ErrorResponse "Token invalid, expired or consumed"
// @Router /{test_type}/sessions [post]
func (ctrl *QuizController) StartSession(c *gin.Context) {
	testType, ok := controller.BindTestType(c)
	if !ok {
		return
	}
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind StartSessionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := ctrl.sessionSvc.Load(c.Request.Context(), testType, req.Token)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// SubmitParticipantInfo godoc
// @Summary Submit the participant info form
// @Description One-time step shown before the first question when the link carries no participant name. Pushed upstream immediately.
// @Tags sessions
// @Accept json
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param token path string true "Link token"
// @Param info body dto.ParticipantInfoRequest true "Participant data"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} dto.ErrorResponse "Missing required field"
// @Failure 404 {object} dto.ErrorResponse "Unknown session"
// @Router /{test_type}/sessions/{token}/participant [post]
func (ctrl *QuizController) SubmitParticipantInfo(c *gin.Context) {
	if _, ok := controller.BindTestType(c); !ok {
		return
	}
	var req dto.ParticipantInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := ctrl.sessionSvc.SubmitParticipantInfo(c.Request.Context(), c.Param("token"), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RecordAnswer godoc
// @Summary Record a Likert answer
// @Description Stores the value for one question; answering again overwrites. Values outside 1..5 are rejected before any state change.
// @Tags sessions
// @Accept json
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param token path string true "Link token"
// @Param answer body dto.RecordAnswerRequest true "Question id and value (1-5)"
// @Success 200 {object} dto.SessionView
// @Failure 400 {object} dto.ErrorResponse "Value out of range or unknown question"
// @Failure 404 {object} dto.ErrorResponse "Unknown session"
// @Router /{test_type}/sessions/{token}/answers [put]
func (ctrl *QuizController) RecordAnswer(c *gin.Context) {
	if _, ok := controller.BindTestType(c); !ok {
		return
	}
	var req dto.RecordAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind RecordAnswerRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := ctrl.sessionSvc.RecordAnswer(c.Param("token"), req.QuestionID, req.Value)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Advance godoc
// @Summary Advance to the next question, or finish
// @Description On the last question the next action submits the complete answer set instead of advancing. An incomplete set is rejected without any upstream call; a rejected submission keeps every answer.
// @Tags sessions
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param token path string true "Link token"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 400 {object} dto.ErrorResponse "Answer set incomplete"
// @Failure 404 {object} dto.ErrorResponse "Unknown session"
// @Router /{test_type}/sessions/{token}/next [post]
func (ctrl *QuizController) Advance(c *gin.Context) {
	if _, ok := controller.BindTestType(c); !ok {
		return
	}
	resp, err := ctrl.sessionSvc.Advance(c.Request.Context(), c.Param("token"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Retreat godoc
// @Summary Go back one question
// @Description Clamped at the first question; never submits.
// @Tags sessions
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param token path string true "Link token"
// @Success 200 {object} dto.SessionView
// @Failure 404 {object} dto.ErrorResponse "Unknown session"
// @Router /{test_type}/sessions/{token}/previous [post]
func (ctrl *QuizController) Retreat(c *gin.Context) {
	if _, ok := controller.BindTestType(c); !ok {
		return
	}
	view, err := ctrl.sessionSvc.Retreat(c.Param("token"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetSession godoc
// @Summary Current session snapshot
// @Tags sessions
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param token path string true "Link token"
// @Success 200 {object} dto.SessionView
// @Failure 404 {object} dto.ErrorResponse "Unknown session"
// @Router /{test_type}/sessions/{token} [get]
func (ctrl *QuizController) GetSession(c *gin.Context) {
	if _, ok := controller.BindTestType(c); !ok {
		return
	}
	view, err := ctrl.sessionSvc.View(c.Param("token"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetResult godoc
// @Summary Rendered result page
// @Description Profile label, description, trait list and the percentage distribution bars. Unknown profile labels render with a generic description instead of failing.
// @Tags results
// @Produce json
// @Param test_type path string true "Test type" Enums(disc, love-languages)
// @Param result_id path string true "Result id"
// @Success 200 {object} dto.ResultView
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /{test_type}/results/{result_id} [get]
func (ctrl *QuizController) GetResult(c *gin.Context) {
	testType, ok := controller.BindTestType(c)
	if !ok {
		return
	}
	view, err := ctrl.resultSvc.GetResultView(c.Request.Context(), testType, c.Param("result_id"))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
