package model

import (
	"fmt"
	"strconv"
)

// Scope carries the caller identity through the request pipeline.
type Scope struct {
	UserID string
}

// NewScope coerces any identifier the transport hands us (string or numeric
// client ID) into a string-keyed scope. JSON numbers decode as float64 and
// must render without an exponent, so a numeric user_id in a request body
// keys the same state as its path-parameter spelling.
func NewScope(userID any) Scope {
	switch v := userID.(type) {
	case string:
		return Scope{UserID: v}
	case float64:
		return Scope{UserID: strconv.FormatFloat(v, 'f', -1, 64)}
	default:
		return Scope{UserID: fmt.Sprintf("%v", v)}
	}
}
