package match

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchtix/internal/application/match/usecases"
	"matchtix/internal/interfaces/http/handlers/testutil"
	"matchtix/internal/shared/errors"
)

type mockListMatchesUC struct {
	results []*usecases.MatchResult
	err     error
}

func (m *mockListMatchesUC) Execute(_ context.Context, _ usecases.ListMatchesQuery) ([]*usecases.MatchResult, error) {
	return m.results, m.err
}

type mockGetMatchUC struct {
	result *usecases.MatchResult
	err    error
}

func (m *mockGetMatchUC) Execute(_ context.Context, _ usecases.GetMatchQuery) (*usecases.MatchResult, error) {
	return m.result, m.err
}

func openingMatchResult() *usecases.MatchResult {
	return &usecases.MatchResult{
		Number:    "M1",
		Date:      time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC),
		Venue:     "Estadio Azteca, Mexico City",
		Teams:     "Mexico vs TBD",
		MatchType: "Group Stage",
	}
}

func TestMatchHandler_ListMatches(t *testing.T) {
	handler := NewMatchHandler(
		&mockListMatchesUC{results: []*usecases.MatchResult{openingMatchResult()}},
		&mockGetMatchUC{},
	)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/matches", nil)

	handler.ListMatches(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"match_number":"M1"`)
	assert.Contains(t, w.Body.String(), `"date":"2026-06-11"`)
}

func TestMatchHandler_GetMatch(t *testing.T) {
	handler := NewMatchHandler(&mockListMatchesUC{}, &mockGetMatchUC{result: openingMatchResult()})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/matches/M1", nil)
	testutil.SetURLParam(c, "number", "M1")

	handler.GetMatch(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
}

func TestMatchHandler_GetMatch_NotFound(t *testing.T) {
	handler := NewMatchHandler(&mockListMatchesUC{}, &mockGetMatchUC{
		err: errors.NewNotFoundError("match not found"),
	})

	c, w := testutil.NewTestContext(http.MethodGet, "/api/matches/M999", nil)
	testutil.SetURLParam(c, "number", "M999")

	handler.GetMatch(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
