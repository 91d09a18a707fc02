package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/rs/zerolog/log"
)

// Provider is the outbound contract with the upstream assessment API.
// Every call is awaited once: no retries, no caching, no background refetch.
type Provider interface {
	// CreateLink mints a single-use test link. testName pre-associates a
	// participant name; leave it empty for the deferred-name flow.
	CreateLink(ctx context.Context, testType model.TestType, testName string) (string, error)

	// Questions returns the ordered question sequence for a token.
	Questions(ctx context.Context, testType model.TestType, token string) ([]model.Question, error)

	// LinkInfo returns the participant name already associated with a token,
	// or empty when the info step still has to run client-side.
	LinkInfo(ctx context.Context, testType model.TestType, token string) (string, error)

	// UpdateUserInfo pushes the participant-info form to the server before
	// the quiz is rendered.
	UpdateUserInfo(ctx context.Context, testType model.TestType, token string, participant model.Participant) error

	// Submit sends the complete answer set and returns the result id plus
	// the server-computed primary profile label.
	Submit(ctx context.Context, testType model.TestType, token, name string, answers []model.Answer) (SubmitResult, error)

	// Result fetches one finished result by id.
	Result(ctx context.Context, testType model.TestType, resultID string) (model.Result, error)

	// ListResults delegates filtering and pagination entirely to the server.
	ListResults(ctx context.Context, testType model.TestType, query ListQuery) (ResultPage, error)

	// Report downloads the binary PDF report for one result.
	Report(ctx context.Context, testType model.TestType, resultID string) ([]byte, error)

	// Metrics returns the dashboard counters.
	Metrics(ctx context.Context) (model.Metrics, error)
}

// SubmitResult carries the pair handed to the navigation layer on success.
type SubmitResult struct {
	ResultID string
	Profile  string
}

// ListQuery mirrors the upstream listing parameters.
type ListQuery struct {
	Page     int
	PageSize int
	Name     string
	Profile  string
}

// ResultPage is one server-side page of result summaries.
type ResultPage struct {
	Results []model.ResultSummary `json:"results"`
	Pages   int                   `json:"pages"`
}

const (
	createLinkPath = "%s/create-link"
	questionsPath  = "%s/questions"
	userInfoPath   = "%s/update-user-info"
	submitPath     = "%s/submit"
	resultPath     = "%s/result/%s"
	resultsPath    = "%s/results"
	reportPath     = "%s/report/%s"
	metricsPath    = "metrics"
)

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a Provider against the given base URL (no trailing slash
// required). A nil httpClient gets a sane default with a request timeout.
func NewClient(baseURL string, httpClient *http.Client) Provider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *client) CreateLink(ctx context.Context, testType model.TestType, testName string) (string, error) {
	body := map[string]string{}
	if testName != "" {
		body["testName"] = testName
	}
	var resp struct {
		Link string `json:"link"`
	}
	path := fmt.Sprintf(createLinkPath, testType.PathSegment())
	if err := c.sendJSON(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return "", err
	}
	return resp.Link, nil
}

func (c *client) Questions(ctx context.Context, testType model.TestType, token string) ([]model.Question, error) {
	query := url.Values{}
	query.Set("token", token)
	var questions []model.Question
	path := fmt.Sprintf(questionsPath, testType.PathSegment())
	if err := c.sendJSON(ctx, http.MethodGet, path, query, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *client) LinkInfo(ctx context.Context, testType model.TestType, token string) (string, error) {
	query := url.Values{}
	query.Set("token", token)
	var resp struct {
		TestName string `json:"testName"`
	}
	if err := c.sendJSON(ctx, http.MethodGet, testType.LinkInfoPath(), query, nil, &resp); err != nil {
		return "", err
	}
	return resp.TestName, nil
}

func (c *client) UpdateUserInfo(ctx context.Context, testType model.TestType, token string, participant model.Participant) error {
	body := map[string]string{
		"token": token,
		"name":  participant.Name,
		"email": participant.Email,
		"phone": participant.Phone,
	}
	path := fmt.Sprintf(userInfoPath, testType.PathSegment())
	return c.sendJSON(ctx, http.MethodPost, path, nil, body, nil)
}

func (c *client) Submit(ctx context.Context, testType model.TestType, token, name string, answers []model.Answer) (SubmitResult, error) {
	body := map[string]any{
		"token":   token,
		"name":    name,
		"answers": answers,
	}
	// DISC results carry "profile", Love Languages carry "primaryLanguage".
	var resp struct {
		ResultID        string `json:"resultId"`
		Profile         string `json:"profile"`
		PrimaryLanguage string `json:"primaryLanguage"`
	}
	path := fmt.Sprintf(submitPath, testType.PathSegment())
	if err := c.sendJSON(ctx, http.MethodPost, path, nil, body, &resp); err != nil {
		return SubmitResult{}, err
	}
	label := resp.Profile
	if label == "" {
		label = resp.PrimaryLanguage
	}
	return SubmitResult{ResultID: resp.ResultID, Profile: label}, nil
}

func (c *client) Result(ctx context.Context, testType model.TestType, resultID string) (model.Result, error) {
	var resp struct {
		Name            string             `json:"name"`
		Profile         string             `json:"profile"`
		PrimaryLanguage string             `json:"primaryLanguage"`
		Scores          map[string]float64 `json:"scores"`
		Date            time.Time          `json:"date"`
	}
	path := fmt.Sprintf(resultPath, testType.PathSegment(), url.PathEscape(resultID))
	if err := c.sendJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return model.Result{}, err
	}
	label := resp.Profile
	if label == "" {
		label = resp.PrimaryLanguage
	}
	return model.Result{
		Name:    resp.Name,
		Profile: label,
		Scores:  resp.Scores,
		Date:    resp.Date,
	}, nil
}

func (c *client) ListResults(ctx context.Context, testType model.TestType, q ListQuery) (ResultPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("limit", strconv.Itoa(q.PageSize))
	if q.Name != "" {
		query.Set("name", q.Name)
	}
	if q.Profile != "" {
		query.Set("profile", q.Profile)
	}
	var page ResultPage
	path := fmt.Sprintf(resultsPath, testType.PathSegment())
	if err := c.sendJSON(ctx, http.MethodGet, path, query, nil, &page); err != nil {
		return ResultPage{}, err
	}
	return page, nil
}

func (c *client) Report(ctx context.Context, testType model.TestType, resultID string) ([]byte, error) {
	path := fmt.Sprintf(reportPath, testType.PathSegment(), url.PathEscape(resultID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, nil), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build report request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("report request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeAPIError(resp)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report body: %w", err)
	}
	return data, nil
}

func (c *client) Metrics(ctx context.Context) (model.Metrics, error) {
	var metrics model.Metrics
	if err := c.sendJSON(ctx, http.MethodGet, metricsPath, nil, nil, &metrics); err != nil {
		return model.Metrics{}, err
	}
	return metrics, nil
}

func (c *client) endpoint(path string, query url.Values) string {
	uri := c.baseURL + "/" + path
	if len(query) > 0 {
		uri += "?" + query.Encode()
	}
	return uri
}

// sendJSON performs one request/response round trip. out may be nil when the
// caller only cares about the status.
func (c *client) sendJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	uri := c.endpoint(path, query)
	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", uri, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("upstream_request", uri).Msg("Upstream request failed")
		return fmt.Errorf("request to upstream API failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := decodeAPIError(resp)
		log.Warn().Str("upstream_request", uri).Int("status", resp.StatusCode).Err(apiErr).Msg("Upstream request rejected")
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", uri, err)
	}
	return nil
}

// decodeAPIError extracts the server's `error` field when the failure body
// carries one, so the message can be surfaced to the user verbatim.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
	}
	return apiErr
}
