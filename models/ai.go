package models

// AdvisorRequest is a free-text consultation query for the smart advisor.
type AdvisorRequest struct {
	Query string `json:"query" binding:"required"`
}

// AdvisorResponse carries the advisor's plain-text answer.
type AdvisorResponse struct {
	Answer   string `json:"answer"`
	Fallback bool   `json:"fallback,omitempty"`
}

// AdvisorTurn is one stored exchange in the advisor conversation context.
type AdvisorTurn struct {
	Role string `json:"role"` // user, advisor
	Text string `json:"text"`
}
