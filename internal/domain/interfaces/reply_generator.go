package interfaces

// ReplyGenerator produces an assistant reply for a user prompt.
type ReplyGenerator interface {
	// GenerateReply returns the reply for prompt. Implementations are
	// deterministic and safe for concurrent use.
	GenerateReply(prompt string) string
}
