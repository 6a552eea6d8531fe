package ai

// Role identifies the author of a conversation turn.
type Role int

const (
	// RoleUser represents the human user.
	RoleUser Role = iota + 1
	// RoleAssistant represents the AI assistant.
	RoleAssistant
)

// Turn is one message in a conversation transcript.
type Turn struct {
	Role    Role
	Content string
}

// Request describes a single completion request. System carries the
// grounding document, Turns the transcript oldest to newest, and
// WebSearch lets the backend consult the live web for fresher answers.
type Request struct {
	System    string
	Turns     []Turn
	MaxTokens int
	WebSearch bool
}

// Result is a completed response. WebEvidence is an opaque marker left
// by the backend when a web search contributed to the answer; empty
// means the response came from the grounding alone.
type Result struct {
	Text        string
	WebEvidence string
}
