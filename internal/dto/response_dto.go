package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

// QuestionView is the single question currently shown to the participant.
type QuestionView struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	Type          string `json:"type"`
	SelectedValue int    `json:"selected_value,omitempty"` // 0 when unanswered
}

// SessionView is the full client-facing snapshot of a quiz session.
type SessionView struct {
	Token           string        `json:"token"`
	TestType        string        `json:"test_type"`
	State           string        `json:"state"`
	ParticipantName string        `json:"participant_name,omitempty"`
	QuestionCount   int           `json:"question_count"`
	CurrentIndex    int           `json:"current_index"`
	Progress        float64       `json:"progress"`
	AnsweredCount   int           `json:"answered_count"`
	Question        *QuestionView `json:"question,omitempty"`
}

// CompletionView is returned when the overloaded next action submitted the
// last question; the session is gone afterwards.
type CompletionView struct {
	ResultID string `json:"result_id"`
	Profile  string `json:"profile"`
}

// AdvanceResponse carries either the next session snapshot or the completion
// outcome, never both.
type AdvanceResponse struct {
	Session    *SessionView    `json:"session,omitempty"`
	Completion *CompletionView `json:"completion,omitempty"`
}

// ScoreBar is one dimension of the result distribution chart.
type ScoreBar struct {
	Dimension  string  `json:"dimension"`
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Percentage int     `json:"percentage"`
}

// ResultView is the rendered result page payload.
type ResultView struct {
	Name        string     `json:"name"`
	Profile     string     `json:"profile"`
	Description string     `json:"description"`
	Traits      []string   `json:"traits"`
	BadgeColor  string     `json:"badge_color"`
	Date        time.Time  `json:"date"`
	Scores      []ScoreBar `json:"scores"`
}
