package service

import (
	"context"
	"testing"
	"time"

	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultProvider(result model.Result) *fakeProvider {
	return &fakeProvider{
		resultFn: func(ctx context.Context, testType model.TestType, resultID string) (model.Result, error) {
			return result, nil
		},
	}
}

func TestGetResultView_RendersKnownProfile(t *testing.T) {
	date := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	svc := NewResultService(resultProvider(model.Result{
		Name:    "João Silva",
		Profile: "Dominante",
		Scores:  map[string]float64{"D": 30, "I": 10, "S": 5, "C": 5},
		Date:    date,
	}))

	view, err := svc.GetResultView(context.Background(), model.TestTypeDISC, "r1")
	require.NoError(t, err)

	assert.Equal(t, "João Silva", view.Name)
	assert.Equal(t, "Dominante", view.Profile)
	assert.NotEmpty(t, view.Description)
	assert.Len(t, view.Traits, 4)
	assert.Equal(t, "bg-red-500", view.BadgeColor)
	assert.Equal(t, date, view.Date)

	require.Len(t, view.Scores, 4)
	assert.Equal(t, "D", view.Scores[0].Dimension)
	assert.Equal(t, "Dominância", view.Scores[0].Label)
	assert.Equal(t, 60, view.Scores[0].Percentage)
	assert.Equal(t, 20, view.Scores[1].Percentage)
	assert.Equal(t, 10, view.Scores[2].Percentage)
	assert.Equal(t, 10, view.Scores[3].Percentage)
}

func TestGetResultView_UnknownProfileGetsGenericFallback(t *testing.T) {
	svc := NewResultService(resultProvider(model.Result{
		Name:    "Maria",
		Profile: "Perfil Misterioso",
		Scores:  map[string]float64{"D": 1, "I": 1, "S": 1, "C": 1},
	}))

	view, err := svc.GetResultView(context.Background(), model.TestTypeDISC, "r2")
	require.NoError(t, err)

	assert.Equal(t, "Perfil Misterioso", view.Profile)
	assert.NotEmpty(t, view.Description)
	assert.Empty(t, view.Traits)
	assert.Equal(t, "bg-gray-500", view.BadgeColor)
}

func TestGetResultView_ZeroScoresRenderZeroPercent(t *testing.T) {
	svc := NewResultService(resultProvider(model.Result{
		Profile: "Influente",
		Scores:  map[string]float64{"D": 0, "I": 0, "S": 0, "C": 0},
	}))

	view, err := svc.GetResultView(context.Background(), model.TestTypeDISC, "r3")
	require.NoError(t, err)

	for _, bar := range view.Scores {
		assert.Equal(t, 0, bar.Percentage)
	}
}

func TestGetResultView_PercentagesNeverExceedHundred(t *testing.T) {
	// Three equal thirds round to 33+33+33; uneven splits can round up past
	// 100 without the cap.
	cases := []map[string]float64{
		{"D": 1, "I": 1, "S": 1, "C": 0},
		{"D": 33.5, "I": 33.5, "S": 33, "C": 0},
		{"D": 12.5, "I": 12.5, "S": 37.5, "C": 37.5},
		{"D": 7, "I": 11, "S": 13, "C": 17},
	}
	for _, scores := range cases {
		svc := NewResultService(resultProvider(model.Result{Profile: "Estável", Scores: scores}))
		view, err := svc.GetResultView(context.Background(), model.TestTypeDISC, "r4")
		require.NoError(t, err)

		sum := 0
		for _, bar := range view.Scores {
			assert.GreaterOrEqual(t, bar.Percentage, 0)
			sum += bar.Percentage
		}
		assert.LessOrEqual(t, sum, 100, "scores %v", scores)
	}
}

func TestGetResultView_LoveLanguagesDimensionsInOrder(t *testing.T) {
	svc := NewResultService(resultProvider(model.Result{
		Profile: "Tempo de Qualidade",
		Scores:  map[string]float64{"words": 4, "acts": 6, "gifts": 2, "time": 10, "touch": 3},
	}))

	view, err := svc.GetResultView(context.Background(), model.TestTypeLove, "r5")
	require.NoError(t, err)

	assert.Equal(t, "bg-green-500", view.BadgeColor)
	require.Len(t, view.Scores, 5)
	assert.Equal(t, []string{"words", "acts", "gifts", "time", "touch"}, []string{
		view.Scores[0].Dimension, view.Scores[1].Dimension, view.Scores[2].Dimension,
		view.Scores[3].Dimension, view.Scores[4].Dimension,
	})
	assert.Equal(t, "Tempo de Qualidade", view.Scores[3].Label)
}

func TestGetResultView_UnknownDimensionStillRenders(t *testing.T) {
	svc := NewResultService(resultProvider(model.Result{
		Profile: "Consciente",
		Scores:  map[string]float64{"D": 5, "I": 5, "S": 5, "C": 5, "X": 5},
	}))

	view, err := svc.GetResultView(context.Background(), model.TestTypeDISC, "r6")
	require.NoError(t, err)

	require.Len(t, view.Scores, 5)
	assert.Equal(t, "X", view.Scores[4].Dimension)
	assert.Equal(t, "X", view.Scores[4].Label)
}

func TestGetResultView_UpstreamErrorPassesThrough(t *testing.T) {
	api := &fakeProvider{
		resultFn: func(ctx context.Context, testType model.TestType, resultID string) (model.Result, error) {
			return model.Result{}, &apiclient.APIError{StatusCode: 404, Message: "Resultado não encontrado"}
		},
	}
	svc := NewResultService(api)

	_, err := svc.GetResultView(context.Background(), model.TestTypeDISC, "missing")
	require.Error(t, err)
	assert.Equal(t, "Resultado não encontrado", err.Error())
}
