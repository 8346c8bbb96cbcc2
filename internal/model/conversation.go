package model

// TurnRole identifies who produced a conversation turn.
type TurnRole string

const (
	RoleUser      TurnRole = "user"
	RoleAssistant TurnRole = "assistant"
)

// Turn is one entry in a session's conversation history.
type Turn struct {
	Role    TurnRole `json:"role"`
	Content string   `json:"content"`
}

// Calculation is one entry in a session's arithmetic audit log.
type Calculation struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
}
