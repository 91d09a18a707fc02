package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/rs/zerolog/log"
)

// SessionState enumerates the quiz-taking flow. The "next" action is
// overloaded: on the last question it submits instead of advancing.
type SessionState string

const (
	StateAwaitingInfo SessionState = "awaiting_participant_info"
	StateAnswering    SessionState = "answering"
	StateSubmitting   SessionState = "submitting"
	StateCompleted    SessionState = "completed"
)

// SessionService owns the per-token quiz sessions. Sessions live in memory
// only: nothing is persisted, and a successful submission discards the
// session to match the link's single-use contract.
type SessionService interface {
	Load(ctx context.Context, testType model.TestType, token string) (*dto.SessionView, error)
	SubmitParticipantInfo(ctx context.Context, token string, info dto.ParticipantInfoRequest) (*dto.SessionView, error)
	RecordAnswer(token, questionID string, value int) (*dto.SessionView, error)
	Advance(ctx context.Context, token string) (*dto.AdvanceResponse, error)
	Retreat(token string) (*dto.SessionView, error)
	View(token string) (*dto.SessionView, error)
}

// session is the ephemeral client-side state for one test link.
type session struct {
	mu              sync.Mutex
	token           string
	testType        model.TestType
	participantName string
	questions       []model.Question
	answers         map[string]int
	index           int
	state           SessionState
}

type sessionService struct {
	api apiclient.Provider

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewSessionService(api apiclient.Provider) SessionService {
	return &sessionService{
		api:      api,
		sessions: make(map[string]*session),
	}
}

// Load fetches the question sequence and link metadata for a token and
// registers a fresh session. A reload starts over, mirroring that session
// state is never persisted across page loads.
func (s *sessionService) Load(ctx context.Context, testType model.TestType, token string) (*dto.SessionView, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("token is required: %w", model.ErrSessionNotFound)
	}

	questions, err := s.api.Questions(ctx, testType, token)
	if err != nil {
		log.Warn().Err(err).Str("test_type", string(testType)).Msg("Failed to load questions for token")
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions available for this test link")
	}

	// The link may already carry a participant name (upfront-name flow).
	// A metadata failure is not fatal: the info step covers the gap.
	name, err := s.api.LinkInfo(ctx, testType, token)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load link metadata, falling back to participant info step")
		name = ""
	}

	sess := &session{
		token:     token,
		testType:  testType,
		questions: questions,
		answers:   make(map[string]int, len(questions)),
		state:     StateAnswering,
	}
	sess.participantName = name
	if name == "" {
		sess.state = StateAwaitingInfo
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()

	log.Info().Str("test_type", string(testType)).Int("questions", len(questions)).Msg("Quiz session loaded")
	return sess.view(), nil
}

// SubmitParticipantInfo validates and pushes the info form upstream, then
// unblocks answering. Empty required fields are rejected before any network
// call.
func (s *sessionService) SubmitParticipantInfo(ctx context.Context, token string, info dto.ParticipantInfoRequest) (*dto.SessionView, error) {
	sess, err := s.get(token)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.state {
	case StateSubmitting:
		return nil, model.ErrSubmitInFlight
	case StateCompleted:
		return nil, model.ErrSessionCompleted
	}

	if strings.TrimSpace(info.Name) == "" || strings.TrimSpace(info.Email) == "" || strings.TrimSpace(info.Phone) == "" {
		return nil, model.ErrMissingParticipantField
	}

	participant := model.Participant{Name: info.Name, Email: info.Email, Phone: info.Phone}
	if err := s.api.UpdateUserInfo(ctx, sess.testType, token, participant); err != nil {
		log.Error().Err(err).Msg("Failed to push participant info upstream")
		return nil, err
	}

	sess.participantName = info.Name
	sess.state = StateAnswering
	return sess.viewLocked(), nil
}

// RecordAnswer stores one Likert value. The UI layer is expected to only
// emit valid values, but the session does not trust it.
func (s *sessionService) RecordAnswer(token, questionID string, value int) (*dto.SessionView, error) {
	sess, err := s.get(token)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.state {
	case StateAwaitingInfo:
		return nil, model.ErrParticipantInfoRequired
	case StateSubmitting:
		return nil, model.ErrSubmitInFlight
	case StateCompleted:
		return nil, model.ErrSessionCompleted
	}

	if value < 1 || value > 5 {
		return nil, model.ErrInvalidAnswer
	}
	if !sess.hasQuestion(questionID) {
		return nil, fmt.Errorf("question %s is not part of this session", questionID)
	}

	sess.answers[questionID] = value
	return sess.viewLocked(), nil
}

// Advance moves to the next question, or submits when already on the last
// one. A failed submission returns the session to answering with every
// answer preserved, so the participant never re-enters data.
func (s *sessionService) Advance(ctx context.Context, token string) (*dto.AdvanceResponse, error) {
	sess, err := s.get(token)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()

	switch sess.state {
	case StateAwaitingInfo:
		sess.mu.Unlock()
		return nil, model.ErrParticipantInfoRequired
	case StateSubmitting:
		sess.mu.Unlock()
		return nil, model.ErrSubmitInFlight
	case StateCompleted:
		sess.mu.Unlock()
		return nil, model.ErrSessionCompleted
	}

	if sess.index < len(sess.questions)-1 {
		sess.index++
		view := sess.viewLocked()
		sess.mu.Unlock()
		return &dto.AdvanceResponse{Session: view}, nil
	}

	// Last question: the next action becomes finish. Completeness is
	// enforced before any network call.
	if len(sess.answers) != len(sess.questions) {
		sess.mu.Unlock()
		return nil, model.ErrIncompleteAnswers
	}

	answers := make([]model.Answer, 0, len(sess.questions))
	for _, q := range sess.questions {
		answers = append(answers, model.Answer{QuestionID: q.ID, Value: sess.answers[q.ID]})
	}
	name := sess.participantName
	testType := sess.testType
	sess.state = StateSubmitting
	sess.mu.Unlock()

	outcome, err := s.api.Submit(ctx, testType, token, name, answers)
	if err != nil {
		log.Error().Err(err).Str("test_type", string(testType)).Msg("Submission rejected by upstream")
		sess.mu.Lock()
		sess.state = StateAnswering
		sess.mu.Unlock()
		return nil, err
	}

	// Single-use link: drop all local state once the server accepted.
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	log.Info().Str("result_id", outcome.ResultID).Str("profile", outcome.Profile).Msg("Quiz session completed")
	return &dto.AdvanceResponse{
		Completion: &dto.CompletionView{ResultID: outcome.ResultID, Profile: outcome.Profile},
	}, nil
}

// Retreat steps back one question, clamped at the first. It never submits.
func (s *sessionService) Retreat(token string) (*dto.SessionView, error) {
	sess, err := s.get(token)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	switch sess.state {
	case StateSubmitting:
		return nil, model.ErrSubmitInFlight
	case StateCompleted:
		return nil, model.ErrSessionCompleted
	}
	if sess.index > 0 {
		sess.index--
	}
	return sess.viewLocked(), nil
}

func (s *sessionService) View(token string) (*dto.SessionView, error) {
	sess, err := s.get(token)
	if err != nil {
		return nil, err
	}
	return sess.view(), nil
}

func (s *sessionService) get(token string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return sess, nil
}

func (sess *session) hasQuestion(questionID string) bool {
	for _, q := range sess.questions {
		if q.ID == questionID {
			return true
		}
	}
	return false
}

func (sess *session) view() *dto.SessionView {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.viewLocked()
}

func (sess *session) viewLocked() *dto.SessionView {
	total := len(sess.questions)
	view := &dto.SessionView{
		Token:           sess.token,
		TestType:        string(sess.testType),
		State:           string(sess.state),
		ParticipantName: sess.participantName,
		QuestionCount:   total,
		CurrentIndex:    sess.index,
		// Progress is derived, never stored: (index+1)/total, always in (0, 1].
		Progress:      float64(sess.index+1) / float64(total),
		AnsweredCount: len(sess.answers),
	}
	if sess.state == StateAnswering || sess.state == StateSubmitting {
		q := sess.questions[sess.index]
		view.Question = &dto.QuestionView{
			ID:            q.ID,
			Text:          q.Text,
			Type:          q.Type,
			SelectedValue: sess.answers[q.ID],
		}
	}
	return view
}
