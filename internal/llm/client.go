package llm

import (
	"context"
)

// Message is one turn of a chat exchange. Message logs are append-only: the
// re-verification path builds a new slice (original plus two appended turns)
// and never mutates a caller's log.
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatClient is the external LLM collaborator capability. Complete issues a
// fresh system+user exchange; Chat replays prior turns for the bounded
// corrective re-prompt. Both honor caller cancellation through ctx.
type ChatClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Chat(ctx context.Context, messages []Message) (string, error)
}
