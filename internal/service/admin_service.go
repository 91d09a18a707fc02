package service

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminService backs the dashboard: the results listing, PDF report
// passthrough and the stat cards. Filtering and pagination are delegated
// entirely to the upstream API; nothing is cached or filtered locally.
type AdminService interface {
	// ListResults issues a fresh upstream query. When a newer query for the
	// same test type was issued before this one resolved, the stale response
	// is discarded with model.ErrSuperseded so the table always reflects the
	// most recently requested parameters.
	ListResults(ctx context.Context, testType model.TestType, query apiclient.ListQuery) (*dto.ResultListResponse, error)

	// DownloadReport fetches the binary PDF for one result and suggests a
	// filename derived from the participant name.
	DownloadReport(ctx context.Context, testType model.TestType, resultID, participantName string) ([]byte, string, error)

	// Metrics returns the dashboard counters.
	Metrics(ctx context.Context) (*dto.MetricsResponse, error)
}

type adminService struct {
	api apiclient.Provider

	// One sequence per test type; the dashboard shows one table per tab.
	discSeq atomic.Uint64
	loveSeq atomic.Uint64
}

func NewAdminService(api apiclient.Provider) AdminService {
	return &adminService{api: api}
}

func (s *adminService) ListResults(ctx context.Context, testType model.TestType, query apiclient.ListQuery) (*dto.ResultListResponse, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 {
		query.PageSize = 10
	}

	seq := s.sequence(testType)
	issued := seq.Add(1)

	page, err := s.api.ListResults(ctx, testType, query)
	if err != nil {
		return nil, err
	}

	// A slow response for an old filter must never overwrite the result of
	// a newer one.
	if seq.Load() != issued {
		log.Debug().Uint64("issued", issued).Msg("Discarding superseded listing response")
		return nil, model.ErrSuperseded
	}

	rows := make([]dto.ResultRowView, 0, len(page.Results))
	for _, summary := range page.Results {
		var row dto.ResultRowView
		if err := copier.Copy(&row, &summary); err != nil {
			return nil, fmt.Errorf("failed to map result row: %w", err)
		}
		row.BadgeColor = model.BadgeColor(testType, summary.Profile)
		rows = append(rows, row)
	}

	return &dto.ResultListResponse{
		Results: rows,
		Page:    query.Page,
		Pages:   page.Pages,
	}, nil
}

func (s *adminService) DownloadReport(ctx context.Context, testType model.TestType, resultID, participantName string) ([]byte, string, error) {
	data, err := s.api.Report(ctx, testType, resultID)
	if err != nil {
		log.Error().Err(err).Str("result_id", resultID).Msg("Failed to download report")
		return nil, "", err
	}
	return data, reportFilename(participantName), nil
}

func (s *adminService) Metrics(ctx context.Context) (*dto.MetricsResponse, error) {
	metrics, err := s.api.Metrics(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.MetricsResponse{
		TotalUsers:         metrics.TotalUsers,
		DiscTestsThisMonth: metrics.DiscTestsThisMonth,
		LoveTestsThisMonth: metrics.LoveTestsThisMonth,
	}, nil
}

func (s *adminService) sequence(testType model.TestType) *atomic.Uint64 {
	if testType == model.TestTypeLove {
		return &s.loveSeq
	}
	return &s.discSeq
}

// reportFilename builds a download name like "relatorio-joao-silva.pdf".
func reportFilename(participantName string) string {
	slug := strings.ToLower(strings.TrimSpace(participantName))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "resultado"
	}
	return fmt.Sprintf("relatorio-%s.pdf", slug)
}
