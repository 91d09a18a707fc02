package dto

import "time"

// GeneratedLinkResponse reports a freshly minted test link. Copied tells the
// dashboard whether the link also landed on the host clipboard; when false
// the link is still usable, just not copied.
type GeneratedLinkResponse struct {
	Link   string `json:"link"`
	Copied bool   `json:"copied"`
}

// ResultRowView is one row of the admin results table.
type ResultRowView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Profile    string    `json:"profile"`
	BadgeColor string    `json:"badge_color"`
	Date       time.Time `json:"date"`
}

// ResultListResponse is one server-side page of the listing.
type ResultListResponse struct {
	Results []ResultRowView `json:"results"`
	Page    int             `json:"page"`
	Pages   int             `json:"pages"`
}

// MetricsResponse backs the dashboard stat cards.
type MetricsResponse struct {
	TotalUsers         int `json:"total_users"`
	DiscTestsThisMonth int `json:"disc_tests_this_month"`
	LoveTestsThisMonth int `json:"love_tests_this_month"`
}

// ResumeEnhanceResponse is the outcome of a résumé enhancement run.
type ResumeEnhanceResponse struct {
	OriginalText string   `json:"original_text,omitempty"`
	Suggestions  []string `json:"suggestions"`
	IASuggestion string   `json:"ia_suggestion"`
}
