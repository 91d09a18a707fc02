package model

import "errors"

var (
	// ErrSessionNotFound is returned when no session exists for a token.
	ErrSessionNotFound = errors.New("session not found for token")
	// ErrInvalidAnswer is returned for non-integer or out-of-range Likert values.
	ErrInvalidAnswer = errors.New("answer value must be an integer between 1 and 5")
	// ErrIncompleteAnswers blocks submission while any question is unanswered.
	ErrIncompleteAnswers = errors.New("all questions must be answered before submitting")
	// ErrParticipantInfoRequired blocks answering until the info step is done.
	ErrParticipantInfoRequired = errors.New("participant info must be provided before answering")
	// ErrMissingParticipantField rejects the info form before any network call.
	ErrMissingParticipantField = errors.New("name, email and phone are required")
	// ErrSubmitInFlight rejects actions while a submission is being processed.
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrSessionCompleted rejects actions on an already submitted session.
	ErrSessionCompleted = errors.New("session already completed")
	// ErrSuperseded marks a listing response that resolved after a newer
	// query was issued; callers must discard it.
	ErrSuperseded = errors.New("query superseded by a newer request")
	// ErrClipboardUnavailable reports that the host clipboard cannot be used.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
