package integrations

import (
	"strings"

	"github.com/drujensen/aichat/internal/domain/interfaces"
)

// ReplyBot is a deterministic, rule-based stand-in for a hosted AI
// model. It answers entirely from the prompt text, needs no API key,
// and always returns within the calling goroutine.
type ReplyBot struct{}

// NewReplyBot creates a new reply bot
func NewReplyBot() *ReplyBot {
	return &ReplyBot{}
}

// GenerateReply returns the reply for prompt. Matching is
// case-insensitive; replies echo the prompt with its casing intact.
func (b *ReplyBot) GenerateReply(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "I'm here! Ask me anything."
	}

	lower := strings.ToLower(prompt)
	if containsGreeting(lower) {
		return "Hey there! How can I help you today?"
	}
	if strings.HasPrefix(lower, "/help") || strings.Contains(lower, "help") {
		return "I can answer questions, summarize, or brainstorm ideas. Just type your message!"
	}
	if strings.HasPrefix(lower, "/summarize") {
		text := strings.TrimSpace(prompt[len("/summarize"):])
		return "Summary: " + Summarize(text)
	}
	if strings.HasPrefix(lower, "/todo") {
		var bullets []string
		for _, item := range strings.Split(prompt, " ")[1:] {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			bullets = append(bullets, "• "+item)
		}
		if len(bullets) == 0 {
			return "Provide items after /todo"
		}
		return "Here’s your checklist:\n" + strings.Join(bullets, "\n")
	}

	return "You said: '" + prompt + "'. Here's a helpful thought: " + Reflect(prompt)
}

// containsGreeting matches greetings as whole words only, so prompts
// like "/summarize thirteen things" do not trip the greeting branch.
func containsGreeting(lower string) bool {
	for _, word := range strings.Fields(lower) {
		switch strings.Trim(word, ".,!?") {
		case "hello", "hi", "hey":
			return true
		}
	}
	return false
}

var _ interfaces.ReplyGenerator = (*ReplyBot)(nil)
