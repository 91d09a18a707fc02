package service

import (
	"context"
	"errors"
	"testing"

	"github.com/celebra-rh/assessment-gateway/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

func linkProvider(t *testing.T, wantName string) *fakeProvider {
	return &fakeProvider{
		createLinkFn: func(ctx context.Context, testType model.TestType, testName string) (string, error) {
			assert.Equal(t, wantName, testName)
			return "https://celebrarh.com.br/disc?token=tok1", nil
		},
	}
}

func TestCreateWithParticipant_RequiresName(t *testing.T) {
	api := linkProvider(t, "João")
	svc := NewLinkService(api, &fakeClipboard{})

	for _, name := range []string{"", "   "} {
		_, err := svc.CreateWithParticipant(context.Background(), model.TestTypeDISC, name, false)
		assert.ErrorIs(t, err, ErrTestNameRequired)
	}
	assert.EqualValues(t, 0, api.createLinkCalls.Load())
}

func TestCreateWithParticipant_CopiesLink(t *testing.T) {
	clip := &fakeClipboard{}
	svc := NewLinkService(linkProvider(t, "João"), clip)

	resp, err := svc.CreateWithParticipant(context.Background(), model.TestTypeDISC, "João", true)
	require.NoError(t, err)

	assert.Equal(t, "https://celebrarh.com.br/disc?token=tok1", resp.Link)
	assert.True(t, resp.Copied)
	assert.Equal(t, []string{resp.Link}, clip.copied)
}

func TestCreateDeferred_SendsEmptyName(t *testing.T) {
	svc := NewLinkService(linkProvider(t, ""), &fakeClipboard{})

	resp, err := svc.CreateDeferred(context.Background(), model.TestTypeLove, false)
	require.NoError(t, err)
	assert.False(t, resp.Copied)
}

func TestCreateLink_ClipboardFailureDegrades(t *testing.T) {
	clip := &fakeClipboard{err: model.ErrClipboardUnavailable}
	svc := NewLinkService(linkProvider(t, "João"), clip)

	resp, err := svc.CreateWithParticipant(context.Background(), model.TestTypeDISC, "João", true)
	require.NoError(t, err)
	assert.False(t, resp.Copied)
	assert.NotEmpty(t, resp.Link)
}

func TestCreateLink_UpstreamErrorPassesThrough(t *testing.T) {
	api := &fakeProvider{
		createLinkFn: func(ctx context.Context, testType model.TestType, testName string) (string, error) {
			return "", errors.New("upstream down")
		},
	}
	svc := NewLinkService(api, &fakeClipboard{})

	_, err := svc.CreateDeferred(context.Background(), model.TestTypeDISC, true)
	require.Error(t, err)
}
