package service

import (
	"context"
	"math"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/dto"
	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ResultService turns a raw upstream Result into the rendered result page:
// profile description and traits from the catalog, badge color, and the
// percentage distribution over trait dimensions.
type ResultService interface {
	GetResultView(ctx context.Context, testType model.TestType, resultID string) (*dto.ResultView, error)
}

type resultService struct {
	api apiclient.Provider
}

func NewResultService(api apiclient.Provider) ResultService {
	return &resultService{api: api}
}

func (s *resultService) GetResultView(ctx context.Context, testType model.TestType, resultID string) (*dto.ResultView, error) {
	result, err := s.api.Result(ctx, testType, resultID)
	if err != nil {
		log.Warn().Err(err).Str("result_id", resultID).Msg("Failed to fetch result")
		return nil, err
	}

	info := model.LookupProfile(testType, result.Profile)

	view := &dto.ResultView{
		BadgeColor: model.BadgeColor(testType, result.Profile),
		Date:       result.Date,
		Scores:     scoreBars(testType, result.Scores),
	}
	view.Name = result.Name
	view.Profile = info.Label
	if err := copier.Copy(view, &info); err != nil {
		return nil, err
	}
	return view, nil
}

// scoreBars builds the distribution in the test type's display order,
// appending any dimension the upstream added that this build does not know.
func scoreBars(testType model.TestType, scores map[string]float64) []dto.ScoreBar {
	ordered := testType.Dimensions()
	seen := make(map[string]bool, len(ordered))
	for _, d := range ordered {
		seen[d] = true
	}
	for key := range scores {
		if !seen[key] {
			ordered = append(ordered, key)
		}
	}

	var total float64
	for _, v := range scores {
		total += v
	}

	bars := make([]dto.ScoreBar, 0, len(ordered))
	for _, dimension := range ordered {
		bars = append(bars, dto.ScoreBar{
			Dimension:  dimension,
			Label:      testType.DimensionLabel(dimension),
			Score:      scores[dimension],
			Percentage: percentageOf(scores[dimension], total),
		})
	}
	return capPercentages(bars)
}

// percentageOf guards the all-zero case: every dimension renders 0% instead
// of dividing by zero.
func percentageOf(score, total float64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * score / total))
}

// capPercentages keeps the displayed distribution at or below 100% when
// per-dimension rounding would push the sum past it, shaving the excess off
// the largest bars first.
func capPercentages(bars []dto.ScoreBar) []dto.ScoreBar {
	sum := 0
	for _, bar := range bars {
		sum += bar.Percentage
	}
	for sum > 100 {
		largest := 0
		for i := range bars {
			if bars[i].Percentage > bars[largest].Percentage {
				largest = i
			}
		}
		bars[largest].Percentage--
		sum--
	}
	return bars
}
