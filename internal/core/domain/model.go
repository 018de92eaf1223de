package domain

import "strings"

type Transport string

const (
	Discord  Transport = "discord"
	Telegram Transport = "telegram"
)

// Message is an incoming chat message, independent of the transport it arrived on.
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	AuthorID  string
	Username  string
	// Roles holds the author's role names, when the transport exposes them.
	Roles     []string
	Text      string
	Transport Transport
}

// HasRole reports whether the author carries a role with the given name, ignoring case.
func (m *Message) HasRole(name string) bool {
	for _, role := range m.Roles {
		if strings.EqualFold(role, name) {
			return true
		}
	}

	return false
}

// Member is a user directory entry, resolved from a mention token.
type Member struct {
	ID          string
	Username    string
	DisplayName string
	RoleIDs     []string
}

func (m *Member) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}

	return m.Username
}
