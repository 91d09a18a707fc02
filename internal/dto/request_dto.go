package dto

// StartSessionRequest opens a quiz session for a shared test link.
type StartSessionRequest struct {
	Token string `json:"token" binding:"required"`
}

// ParticipantInfoRequest is the one-time info form shown before the first
// question when the link was generated without an upfront name.
type ParticipantInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RecordAnswerRequest records one Likert answer for the current session.
// Re-answering a question overwrites the previous value.
type RecordAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Value      int    `json:"value" binding:"required"`
}

// CreateLinkRequest asks the upstream to mint a single-use test link.
// TestName is required for the upfront-name flow and absent for the
// deferred-name flow. Copy additionally places the link on the host
// clipboard; a copy failure never fails the request.
type CreateLinkRequest struct {
	TestName *string `json:"test_name"`
	Copy     bool    `json:"copy"`
}
