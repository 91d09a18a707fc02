package model

import "time"

// Question is one item of an assessment as served by the upstream API.
// The sequence is immutable once fetched; the gateway only reads it.
type Question struct {
	ID   string `json:"_id"`
	Text string `json:"text"`
	Type string `json:"type"` // trait dimension, e.g. "D" or "words"
}

// Answer pairs a question with a Likert value in 1..5.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      int    `json:"value"`
}

// Participant holds the info collected before the first question is shown
// when the link was generated without an upfront name.
type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Result is the server-computed outcome of a finished assessment.
// Created once upstream at submission time; never mutated here.
type Result struct {
	Name    string             `json:"name"`
	Profile string             `json:"profile"`
	Scores  map[string]float64 `json:"scores"`
	Date    time.Time          `json:"date"`
}

// ResultSummary is one row of the admin listing.
type ResultSummary struct {
	ID      string    `json:"_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Phone   string    `json:"phone,omitempty"`
	Profile string    `json:"profile"`
	Date    time.Time `json:"date"`
}

// Metrics are the dashboard counters exposed by the upstream API.
type Metrics struct {
	TotalUsers         int `json:"totalUsers"`
	DiscTestsThisMonth int `json:"discTestsThisMonth"`
	LoveTestsThisMonth int `json:"loveTestsThisMonth"`
}
