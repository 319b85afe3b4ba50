package integrations

import (
	"testing"
)

func TestGenerateReply_EmptyPrompt(t *testing.T) {
	bot := NewReplyBot()
	expected := "I'm here! Ask me anything."

	if got := bot.GenerateReply(""); got != expected {
		t.Errorf("Expected %q for empty prompt, got %q", expected, got)
	}
	if got := bot.GenerateReply("   "); got != expected {
		t.Errorf("Expected %q for blank prompt, got %q", expected, got)
	}
}

func TestGenerateReply_Greeting(t *testing.T) {
	bot := NewReplyBot()
	expected := "Hey there! How can I help you today?"

	for _, prompt := range []string{"hi there", "HELLO", "hey, what's up"} {
		if got := bot.GenerateReply(prompt); got != expected {
			t.Errorf("Expected greeting for %q, got %q", prompt, got)
		}
	}
}

func TestGenerateReply_GreetingNeedsWholeWord(t *testing.T) {
	bot := NewReplyBot()
	greeting := "Hey there! How can I help you today?"

	// "thirteen" contains "hi" but is not a greeting.
	if got := bot.GenerateReply("thirteen reasons"); got == greeting {
		t.Errorf("Expected no greeting for embedded match, got %q", got)
	}
}

func TestGenerateReply_Help(t *testing.T) {
	bot := NewReplyBot()
	expected := "I can answer questions, summarize, or brainstorm ideas. Just type your message!"

	for _, prompt := range []string{"/help", "/help me", "that was unhelpful"} {
		if got := bot.GenerateReply(prompt); got != expected {
			t.Errorf("Expected capability reply for %q, got %q", prompt, got)
		}
	}
}

func TestGenerateReply_Summarize(t *testing.T) {
	bot := NewReplyBot()
	prompt := "/summarize one two three four five six seven eight nine ten eleven twelve thirteen"
	expected := "Summary: one two three four five six seven eight nine ten eleven twelve …"

	if got := bot.GenerateReply(prompt); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestGenerateReply_SummarizeShortText(t *testing.T) {
	bot := NewReplyBot()

	if got := bot.GenerateReply("/summarize just a few words"); got != "Summary: just a few words" {
		t.Errorf("Expected short text back unchanged, got %q", got)
	}
	if got := bot.GenerateReply("/summarize"); got != "Summary: " {
		t.Errorf("Expected empty summary for bare command, got %q", got)
	}
}

func TestGenerateReply_SummarizeKeepsPromptCase(t *testing.T) {
	bot := NewReplyBot()

	// Command matching is case-insensitive, the summarized text is not.
	if got := bot.GenerateReply("/SUMMARIZE Keep My Case"); got != "Summary: Keep My Case" {
		t.Errorf("Expected original casing in summary, got %q", got)
	}
}

func TestGenerateReply_Todo(t *testing.T) {
	bot := NewReplyBot()
	expected := "Here’s your checklist:\n• buy\n• milk,\n• walk\n• dog"

	if got := bot.GenerateReply("/todo buy milk, walk dog"); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestGenerateReply_TodoNoItems(t *testing.T) {
	bot := NewReplyBot()
	expected := "Provide items after /todo"

	for _, prompt := range []string{"/todo", "/todo   "} {
		if got := bot.GenerateReply(prompt); got != expected {
			t.Errorf("Expected %q for %q, got %q", expected, prompt, got)
		}
	}
}

func TestGenerateReply_Default(t *testing.T) {
	bot := NewReplyBot()
	prompt := "Thinking about distributed systems design tonight"
	expected := "You said: 'Thinking about distributed systems design tonight'. " +
		"Here's a helpful thought: key points → Thinking, design, distributed, systems, tonight"

	if got := bot.GenerateReply(prompt); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestGenerateReply_DefaultTrimsEcho(t *testing.T) {
	bot := NewReplyBot()
	expected := "You said: 'so cool'. Here's a helpful thought: sounds interesting!"

	if got := bot.GenerateReply("  so cool  "); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}
