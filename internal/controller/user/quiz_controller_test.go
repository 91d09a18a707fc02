package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionService struct {
	loadFn    func(ctx context.Context, testType model.TestType, token string) (*dto.SessionView, error)
	advanceFn func(ctx context.Context, token string) (*dto.AdvanceResponse, error)
	recordFn  func(token, questionID string, value int) (*dto.SessionView, error)
}

func (s *stubSessionService) Load(ctx context.Context, testType model.TestType, token string) (*dto.SessionView, error) {
	return s.loadFn(ctx, testType, token)
}

func (s *stubSessionService) SubmitParticipantInfo(ctx context.Context, token string, info dto.ParticipantInfoRequest) (*dto.SessionView, error) {
	return nil, model.ErrSessionNotFound
}

func (s *stubSessionService) RecordAnswer(token, questionID string, value int) (*dto.SessionView, error) {
	return s.recordFn(token, questionID, value)
}

func (s *stubSessionService) Advance(ctx context.Context, token string) (*dto.AdvanceResponse, error) {
	return s.advanceFn(ctx, token)
}

func (s *stubSessionService) Retreat(token string) (*dto.SessionView, error) {
	return nil, model.ErrSessionNotFound
}

func (s *stubSessionService) View(token string) (*dto.SessionView, error) {
	return nil, model.ErrSessionNotFound
}

type stubResultService struct {
	viewFn func(ctx context.Context, testType model.TestType, resultID string) (*dto.ResultView, error)
}

func (s *stubResultService) GetResultView(ctx context.Context, testType model.TestType, resultID string) (*dto.ResultView, error) {
	return s.viewFn(ctx, testType, resultID)
}

func quizRouter(sessions *stubSessionService, results *stubResultService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewQuizController(sessions, results)
	quiz := r.Group("/api/v1/:test_type")
	quiz.POST("/sessions", ctrl.StartSession)
	quiz.GET("/sessions/:token", ctrl.GetSession)
	quiz.PUT("/sessions/:token/answers", ctrl.RecordAnswer)
	quiz.POST("/sessions/:token/next", ctrl.Advance)
	quiz.GET("/results/:result_id", ctrl.GetResult)
	return r
}

func TestStartSession_ReturnsCreatedView(t *testing.T) {
	sessions := &stubSessionService{
		loadFn: func(ctx context.Context, testType model.TestType, token string) (*dto.SessionView, error) {
			assert.Equal(t, model.TestTypeDISC, testType)
			assert.Equal(t, "tok1", token)
			return &dto.SessionView{Token: token, TestType: "disc", State: "answering", QuestionCount: 10}, nil
		},
	}
	router := quizRouter(sessions, &stubResultService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/disc/sessions", strings.NewReader(`{"token":"tok1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var view dto.SessionView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "tok1", view.Token)
	assert.Equal(t, 10, view.QuestionCount)
}

func TestStartSession_MissingTokenRejected(t *testing.T) {
	router := quizRouter(&stubSessionService{}, &stubResultService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/disc/sessions", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartSession_UnknownTestType(t *testing.T) {
	router := quizRouter(&stubSessionService{}, &stubResultService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mbti/sessions", strings.NewReader(`{"token":"tok1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartSession_UpstreamRejectionKeepsStatusAndMessage(t *testing.T) {
	sessions := &stubSessionService{
		loadFn: func(ctx context.Context, testType model.TestType, token string) (*dto.SessionView, error) {
			return nil, &apiclient.APIError{StatusCode: http.StatusGone, Message: "Este link expirou"}
		},
	}
	router := quizRouter(sessions, &stubResultService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/disc/sessions", strings.NewReader(`{"token":"stale"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusGone, w.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Este link expirou", resp.Error)
}

func TestRecordAnswer_InvalidValueMapsToBadRequest(t *testing.T) {
	sessions := &stubSessionService{
		recordFn: func(token, questionID string, value int) (*dto.SessionView, error) {
			return nil, model.ErrInvalidAnswer
		},
	}
	router := quizRouter(sessions, &stubResultService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/disc/sessions/tok1/answers", strings.NewReader(`{"question_id":"q1","value":9}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvance_CompletionPayload(t *testing.T) {
	sessions := &stubSessionService{
		advanceFn: func(ctx context.Context, token string) (*dto.AdvanceResponse, error) {
			return &dto.AdvanceResponse{Completion: &dto.CompletionView{ResultID: "r1", Profile: "Dominante"}}, nil
		},
	}
	router := quizRouter(sessions, &stubResultService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/disc/sessions/tok1/next", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.AdvanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Completion)
	assert.Equal(t, "r1", resp.Completion.ResultID)
	assert.Nil(t, resp.Session)
}

func TestGetSession_UnknownTokenIsNotFound(t *testing.T) {
	router := quizRouter(&stubSessionService{}, &stubResultService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/disc/sessions/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetResult_RendersView(t *testing.T) {
	results := &stubResultService{
		viewFn: func(ctx context.Context, testType model.TestType, resultID string) (*dto.ResultView, error) {
			assert.Equal(t, model.TestTypeLove, testType)
			return &dto.ResultView{Profile: "Presentes", BadgeColor: "bg-pink-500"}, nil
		},
	}
	router := quizRouter(&stubSessionService{}, results)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/love-languages/results/r9", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var view dto.ResultView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "bg-pink-500", view.BadgeColor)
}
