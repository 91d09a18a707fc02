package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/celebra-rh/assessment-gateway/config"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const maxResumeSize = 5 * 1024 * 1024 // 5MB, matching the upload form limit

var (
	// ErrResumeUnsupportedType rejects anything that is not a PDF or DOCX.
	ErrResumeUnsupportedType = errors.New("only PDF or DOCX resumes are supported")
	// ErrResumeTooLarge rejects uploads over the size limit before any model call.
	ErrResumeTooLarge = errors.New("resume file exceeds the 5MB limit")
	// ErrResumeServiceUnavailable signals a missing Gemini configuration.
	ErrResumeServiceUnavailable = errors.New("resume enhancement is currently unavailable")
)

var supportedResumeMIMETypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// ResumeService runs an uploaded résumé through Gemini and returns concrete
// improvement suggestions plus an overall review.
type ResumeService interface {
	Enhance(ctx context.Context, mimeType string, data []byte) (*dto.ResumeEnhanceResponse, error)
}

type resumeService struct {
	client *genai.GenerativeModel
	cfg    *config.Config
}

func NewResumeService(cfg *config.Config) (ResumeService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. ResumeService will be non-functional.")
		return &resumeService{cfg: cfg, client: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-1.5-flash")
	return &resumeService{client: model, cfg: cfg}, nil
}

func (s *resumeService) Enhance(ctx context.Context, mimeType string, data []byte) (*dto.ResumeEnhanceResponse, error) {
	if !supportedResumeMIMETypes[mimeType] {
		return nil, ErrResumeUnsupportedType
	}
	if len(data) == 0 || len(data) > maxResumeSize {
		return nil, ErrResumeTooLarge
	}
	if s.client == nil {
		return nil, ErrResumeServiceUnavailable
	}

	var prompt strings.Builder
	prompt.WriteString("Você é um especialista em recrutamento e seleção analisando o currículo anexado.\n")
	prompt.WriteString("Extraia o texto do currículo e avalie sua qualidade para processos seletivos.\n\n")
	prompt.WriteString("Formate sua resposta estritamente assim:\n")
	prompt.WriteString("Texto:\n[texto integral extraído do currículo]\n")
	prompt.WriteString("Sugestões:\n- [uma sugestão concreta e acionável por linha, 3 a 6 linhas]\n")
	prompt.WriteString("Avaliação:\n[um parágrafo com a avaliação geral do currículo]\n")

	parts := []genai.Part{
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt.String()),
	}

	resp, err := s.client.GenerateContent(ctx, parts...)
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during resume enhancement")
		return nil, fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return nil, fmt.Errorf("gemini returned no content")
	}

	fullText := ""
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			fullText += string(txt)
		}
	}

	return parseResumeReview(fullText), nil
}

// parseResumeReview splits the model output into the three labeled sections.
// Missing sections degrade to empty values instead of failing the upload.
func parseResumeReview(raw string) *dto.ResumeEnhanceResponse {
	textSection := section(raw, "Texto:", "Sugestões:")
	suggestionsSection := section(raw, "Sugestões:", "Avaliação:")
	reviewSection := section(raw, "Avaliação:", "")

	var suggestions []string
	for _, line := range strings.Split(suggestionsSection, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
		if line != "" {
			suggestions = append(suggestions, line)
		}
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	return &dto.ResumeEnhanceResponse{
		OriginalText: strings.TrimSpace(textSection),
		Suggestions:  suggestions,
		IASuggestion: strings.TrimSpace(reviewSection),
	}
}

func section(raw, prefix, next string) string {
	start := strings.Index(raw, prefix)
	if start == -1 {
		return ""
	}
	body := raw[start+len(prefix):]
	if next != "" {
		if end := strings.Index(body, next); end != -1 {
			body = body[:end]
		}
	}
	return body
}
