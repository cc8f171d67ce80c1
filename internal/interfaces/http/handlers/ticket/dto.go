package ticket

import (
	"time"

	"github.com/shopspring/decimal"

	"matchtix/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	MatchNumber string           `json:"match_number" binding:"required,matchnumber"`
	Date        string           `json:"date" binding:"required"`
	Venue       string           `json:"venue" binding:"max=100"`
	Teams       string           `json:"teams" binding:"max=120"`
	MatchType   string           `json:"match_type" binding:"max=50"`
	Category    string           `json:"ticket_category" binding:"required,max=50"`
	Quantity    int              `json:"quantity" binding:"required,min=1"`
	Info        string           `json:"ticket_info"`
	Price       *decimal.Decimal `json:"price"`
}

func (r CreateTicketRequest) ToCommand(ownerID uint, ownerName string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		OwnerID:     ownerID,
		OwnerName:   ownerName,
		Name:        r.Name,
		MatchNumber: r.MatchNumber,
		Date:        r.Date,
		Venue:       r.Venue,
		Teams:       r.Teams,
		MatchType:   r.MatchType,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Info:        r.Info,
		Price:       r.Price,
	}
}

// NullableDecimal records whether the field appeared in the request
// body at all. A plain *decimal.Decimal cannot tell an explicit null,
// which clears the stored price, apart from an absent field.
type NullableDecimal struct {
	Value *decimal.Decimal
	Set   bool
}

func (n *NullableDecimal) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Value = &d
	return nil
}

// UpdateTicketRequest carries a partial update; absent fields leave the
// ticket untouched.
type UpdateTicketRequest struct {
	Name        *string         `json:"name"`
	MatchNumber *string         `json:"match_number"`
	Date        *string         `json:"date"`
	Venue       *string         `json:"venue"`
	Teams       *string         `json:"teams"`
	MatchType   *string         `json:"match_type"`
	Category    *string         `json:"ticket_category"`
	Quantity    *int            `json:"quantity"`
	Info        *string         `json:"ticket_info"`
	Price       NullableDecimal `json:"price"`
}

func (r UpdateTicketRequest) ToCommand(ticketID, requesterID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		RequesterID: requesterID,
		Name:        r.Name,
		MatchNumber: r.MatchNumber,
		Date:        r.Date,
		Venue:       r.Venue,
		Teams:       r.Teams,
		MatchType:   r.MatchType,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Info:        r.Info,
		Price:       r.Price.Value,
		PriceSet:    r.Price.Set,
	}
}

type TicketResponse struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	MatchNumber   string           `json:"match_number"`
	Date          string           `json:"date"`
	Venue         string           `json:"venue"`
	Teams         string           `json:"teams,omitempty"`
	MatchType     string           `json:"match_type,omitempty"`
	Category      string           `json:"ticket_category"`
	Quantity      int              `json:"quantity"`
	Info          string           `json:"ticket_info,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	OwnerID       uint             `json:"owner_id"`
	OwnerUsername string           `json:"owner_username,omitempty"`
	IsOwner       bool             `json:"is_owner"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func toTicketResponse(result *usecases.TicketResult) TicketResponse {
	return TicketResponse{
		ID:            result.ID,
		Name:          result.Name,
		MatchNumber:   result.MatchNumber,
		Date:          result.Date.Format("2006-01-02"),
		Venue:         result.Venue,
		Teams:         result.Teams,
		MatchType:     result.MatchType,
		Category:      result.Category,
		Quantity:      result.Quantity,
		Info:          result.Info,
		Price:         result.Price,
		OwnerID:       result.OwnerID,
		OwnerUsername: result.OwnerName,
		IsOwner:       result.IsOwner,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}
}

func toTicketResponses(results []*usecases.TicketResult) []TicketResponse {
	responses := make([]TicketResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toTicketResponse(result))
	}
	return responses
}
