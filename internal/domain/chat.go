package domain

// Chat message roles.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one (role, content) entry of a chat prompt.
type Message struct {
	Role    string
	Content string
}
