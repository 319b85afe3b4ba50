package tui

import (
	"github.com/drujensen/aichat/internal/domain/entities"
)

type (
	conversationCreatedMsg        *entities.Conversation
	messagesRefreshedMsg          []*entities.Message
	startCreateConversationMsg    string
	canceledCreateConversationMsg struct{}
)

type (
	startHistoryMsg         struct{}
	conversationsFetchedMsg struct {
		conversations []*entities.Conversation
	}
	historySelectedMsg struct {
		conversationID string
	}
	historyCancelledMsg struct{}
)

type (
	startHelpMsg     struct{}
	helpCancelledMsg struct{}
)

type (
	startCommandsMsg     struct{}
	executeCommandMsg    struct{ command string }
	commandsCancelledMsg struct{}
)

type errMsg error
