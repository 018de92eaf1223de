package domain

import "strings"

// MentionID extracts the user ID from a mention token of the form <@id> or <@!id>.
func MentionID(token string) (string, bool) {
	inner, ok := strings.CutPrefix(token, "<@")
	if !ok {
		return "", false
	}

	inner, ok = strings.CutSuffix(inner, ">")
	if !ok {
		return "", false
	}

	inner = strings.TrimPrefix(inner, "!")
	if inner == "" {
		return "", false
	}

	return inner, true
}

// Mention renders the mention token for a user ID.
func Mention(id string) string {
	return "<@" + id + ">"
}
