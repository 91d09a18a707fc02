package service

import (
	"context"
	"errors"
	"strings"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/clipboard"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/rs/zerolog/log"
)

// ErrTestNameRequired rejects the upfront-name flow before any network call.
var ErrTestNameRequired = errors.New("participant name is required to generate this test")

// LinkService mints single-use test links. Two flows coexist: one collects
// the participant name at generation time, the other defers it to the
// participant-info step. The validity window (one hour, single use) is owned
// by the server; the gateway only relays it.
type LinkService interface {
	// CreateWithParticipant requires a non-empty participant name.
	CreateWithParticipant(ctx context.Context, testType model.TestType, testName string, copyLink bool) (*dto.GeneratedLinkResponse, error)
	// CreateDeferred mints a link whose participant info is collected later.
	CreateDeferred(ctx context.Context, testType model.TestType, copyLink bool) (*dto.GeneratedLinkResponse, error)
}

type linkService struct {
	api       apiclient.Provider
	clipboard clipboard.Writer
}

func NewLinkService(api apiclient.Provider, clip clipboard.Writer) LinkService {
	return &linkService{api: api, clipboard: clip}
}

func (s *linkService) CreateWithParticipant(ctx context.Context, testType model.TestType, testName string, copyLink bool) (*dto.GeneratedLinkResponse, error) {
	if strings.TrimSpace(testName) == "" {
		return nil, ErrTestNameRequired
	}
	return s.create(ctx, testType, testName, copyLink)
}

func (s *linkService) CreateDeferred(ctx context.Context, testType model.TestType, copyLink bool) (*dto.GeneratedLinkResponse, error) {
	return s.create(ctx, testType, "", copyLink)
}

func (s *linkService) create(ctx context.Context, testType model.TestType, testName string, copyLink bool) (*dto.GeneratedLinkResponse, error) {
	link, err := s.api.CreateLink(ctx, testType, testName)
	if err != nil {
		log.Error().Err(err).Str("test_type", string(testType)).Msg("Failed to create test link")
		return nil, err
	}

	resp := &dto.GeneratedLinkResponse{Link: link}
	if copyLink {
		// Copy failures degrade: the link is still visible, just not copied.
		if err := s.clipboard.Copy(link); err != nil {
			log.Warn().Err(err).Msg("Could not copy link to clipboard")
		} else {
			resp.Copied = true
		}
	}
	return resp, nil
}
