package match

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"matchtix/internal/application/match/usecases"
	"matchtix/internal/shared/utils"
)

// MatchHandler serves the read-only tournament schedule. These routes are
// public; the schedule is not user data.
type MatchHandler struct {
	listMatchesUC usecases.ListMatchesExecutor
	getMatchUC    usecases.GetMatchExecutor
}

func NewMatchHandler(listMatchesUC usecases.ListMatchesExecutor, getMatchUC usecases.GetMatchExecutor) *MatchHandler {
	return &MatchHandler{
		listMatchesUC: listMatchesUC,
		getMatchUC:    getMatchUC,
	}
}

// ListMatches handles GET /api/matches
func (h *MatchHandler) ListMatches(c *gin.Context) {
	results, err := h.listMatchesUC.Execute(c.Request.Context(), usecases.ListMatchesQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMatchResponses(results))
}

// GetMatch handles GET /api/matches/:number
func (h *MatchHandler) GetMatch(c *gin.Context) {
	result, err := h.getMatchUC.Execute(c.Request.Context(), usecases.GetMatchQuery{
		Number: c.Param("number"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", toMatchResponse(result))
}

type MatchResponse struct {
	Number    string `json:"match_number"`
	Date      string `json:"date"`
	Venue     string `json:"venue"`
	Teams     string `json:"teams,omitempty"`
	MatchType string `json:"match_type,omitempty"`
}

func toMatchResponse(result *usecases.MatchResult) MatchResponse {
	return MatchResponse{
		Number:    result.Number,
		Date:      result.Date.Format("2006-01-02"),
		Venue:     result.Venue,
		Teams:     result.Teams,
		MatchType: result.MatchType,
	}
}

func toMatchResponses(results []*usecases.MatchResult) []MatchResponse {
	responses := make([]MatchResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toMatchResponse(result))
	}
	return responses
}
