package agent_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/etnz/diary"
	"github.com/etnz/diary/agent"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStockData(ticker string, price float64, titles ...string) *diary.StockData {
	d := &diary.StockData{Ticker: ticker, Price: decimal.NewFromFloat(price), Info: map[string]any{}}
	for _, title := range titles {
		d.News = append(d.News, diary.NewsItem{Title: title, Link: "#", Publisher: "Reuters"})
	}
	return d
}

func TestDigest(t *testing.T) {
	t.Parallel()

	require.Equal(t, agent.NoNews, agent.Digest(newStockData("TSLA", 1)))
	require.Equal(t, "a; b", agent.Digest(newStockData("TSLA", 1, "a", "b")))
	require.Equal(t, "1; 2; 3; 4; 5", agent.Digest(newStockData("TSLA", 1, "1", "2", "3", "4", "5", "6", "7")))
}

func TestGenerateOffline(t *testing.T) {
	t.Parallel()

	a := agent.NewAnalyst(nil)
	data := newStockData("TSLA", 1234.5, "Tesla beats estimates", "New factory")

	first := a.Generate(t.Context(), data)
	second := a.Generate(t.Context(), data)

	require.Equal(t, first, second)
	require.True(t, agent.IsMock(first))
	require.True(t, strings.HasPrefix(first, agent.MockMarker))
	require.Contains(t, first, "TSLA")
	require.Contains(t, first, "$1,234.50")
	require.Contains(t, first, "Tesla beats estimates; New factory")
	require.False(t, agent.IsError(first))
}

func TestGenerateOfflineKoreanTicker(t *testing.T) {
	t.Parallel()

	got := agent.NewAnalyst(nil).Generate(t.Context(), newStockData("005930.KS", 71200))
	require.Contains(t, got, "71,200")
	require.Contains(t, got, agent.NoNews)
}

func TestGenerateWithModel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		answer string
		err    error
		want   string
	}{
		{name: "answer is trimmed", answer: "  Solid quarter. Neutral.\n", want: "Solid quarter. Neutral."},
		{name: "empty answer", answer: " \n", want: agent.EmptyResponse},
		{name: "invalid key", err: errors.New("Error 400, Message: API key not valid. Please pass a valid API key., Status: INVALID_ARGUMENT"), want: agent.ErrorRules[0].Message},
		{name: "quota", err: errors.New("Error 429, Message: Resource has been exhausted (e.g. check quota)., Status: RESOURCE_EXHAUSTED"), want: agent.ErrorRules[1].Message},
		{name: "other", err: errors.New("connection reset by peer"), want: "Error generating AI insight: connection reset by peer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			model := NewMockModel(ctrl)
			model.EXPECT().
				Generate(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, prompt string) (string, error) {
					require.Contains(t, prompt, "TSLA")
					require.Contains(t, prompt, "$250.00")
					require.Contains(t, prompt, "Recall announced")
					require.Contains(t, prompt, "Respond in English.")
					return tc.answer, tc.err
				}).
				Times(1)

			a := agent.NewAnalyst(model)
			a.Language = "English"
			got := a.Generate(t.Context(), newStockData("TSLA", 250, "Recall announced"))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		detail string
		rule   string // empty for the generic message
	}{
		{"API_KEY_INVALID", "credential"},
		{"api key not valid", "credential"},
		{"Invalid argument", "credential"},
		{"QUOTA exceeded", "quota"},
		{"rate LIMIT reached", "quota"},
		{"PERMISSION_DENIED", "permission"},
		{"models/gemini-9 is NOT_FOUND", "not found"},
		{"model not found", "not found"},
		{"invalid quota", "credential"}, // the order matters
		{"timeout", ""},
	}

	rules := make(map[string]string)
	for _, r := range agent.ErrorRules {
		rules[r.Name] = r.Message
	}

	for _, tc := range testCases {
		got := agent.ErrorMessage(errors.New(tc.detail))
		want := fmt.Sprintf("Error generating AI insight: %s", tc.detail)
		if tc.rule != "" {
			want = rules[tc.rule]
		}
		require.Equalf(t, want, got, "ErrorMessage(%q)", tc.detail)
		require.Truef(t, agent.IsError(got), "IsError(%q)", got)
	}
}
