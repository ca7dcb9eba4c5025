package domain

import "strconv"

// Domain contains core models.

// User is the current user's profile as returned by the API. The server owns
// the schema, so the payload is kept as decoded JSON.
type User map[string]any

// Field returns the string field key, or "" when absent or not a string.
func (u User) Field(key string) string {
	if u == nil {
		return ""
	}
	v, _ := u[key].(string)
	return v
}

// ID returns the user's id rendered as a string.
func (u User) ID() string {
	switch v := u["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
