package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/services"
)

type TUI struct {
	conversationService services.ConversationService
	messageService      services.MessageService
	activeConversation  *entities.Conversation

	chatView    ChatView
	convForm    ConversationForm
	historyView HistoryView
	helpView    HelpView
	commandMenu CommandMenu

	state string
	err   error
}

func NewTUI(conversationService services.ConversationService, messageService services.MessageService) TUI {
	return TUI{
		conversationService: conversationService,
		messageService:      messageService,
		activeConversation:  nil,

		chatView:    NewChatView(messageService, nil),
		convForm:    NewConversationForm(conversationService),
		historyView: NewHistoryView(conversationService),
		helpView:    NewHelpView(),
		commandMenu: NewCommandMenu(),

		state: "chat/create",
		err:   nil,
	}
}

func (t TUI) Init() tea.Cmd {
	return tea.Batch(
		t.convForm.Init(),
		t.chatView.Init(),
		t.historyView.Init(),
		t.helpView.Init(),
		t.commandMenu.Init(),
	)
}

func (t TUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Handle conversation lifecycle messages
	case startCreateConversationMsg:
		t.state = "chat/create"
		t.convForm.SetTitle(string(msg))
		return t, t.convForm.Init()
	case conversationCreatedMsg:
		t.activeConversation = msg
		t.chatView.SetConversation(msg, nil)
		t.state = "chat/view"
		return t, t.chatView.Init()
	case canceledCreateConversationMsg:
		if t.activeConversation == nil {
			return t, tea.Quit
		}
		t.state = "chat/view"
		t.chatView.err = errors.New("New conversation canceled")
		return t, t.chatView.Init()

	// Handle history view messages
	case startHistoryMsg:
		t.state = "chat/history"
		return t, t.historyView.Init()
	case historySelectedMsg:
		ctx := context.Background()
		conversation, err := t.conversationService.GetConversation(ctx, msg.conversationID)
		if err != nil {
			return t, func() tea.Msg { return errMsg(err) }
		}
		messages, err := t.messageService.ListMessages(ctx, msg.conversationID)
		if err != nil {
			return t, func() tea.Msg { return errMsg(err) }
		}
		t.activeConversation = conversation
		t.chatView.SetConversation(conversation, messages)
		t.state = "chat/view"
		return t, nil
	case historyCancelledMsg:
		t.state = "chat/view"
		return t, nil

	// Handle help view messages
	case startHelpMsg:
		t.state = "chat/help"
		return t, t.helpView.Init()
	case helpCancelledMsg:
		t.state = "chat/view"
		return t, nil

	// Handle command menu messages
	case startCommandsMsg:
		t.state = "chat/commands"
		t.commandMenu.list.ResetFilter()
		return t, t.commandMenu.Init()

	case executeCommandMsg:
		// Default back to chat view
		t.state = "chat/view"

		switch msg.command {
		case "new":
			t.state = "chat/create"
			t.convForm.SetTitle("")
			return t, t.convForm.Init()
		case "history":
			t.state = "chat/history"
			return t, t.historyView.Init()
		case "help":
			t.state = "chat/help"
			return t, t.helpView.Init()
		case "exit":
			return t, tea.Quit
		}
		return t, nil

	case commandsCancelledMsg:
		t.state = "chat/view"
		return t, nil

	// Handle global key messages
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
		case tea.KeyCtrlH:
			if t.state == "chat/view" {
				t.state = "chat/history"
				return t, t.historyView.Init()
			}
		}

	case tea.WindowSizeMsg:
		var (
			cmd  tea.Cmd
			cmds []tea.Cmd
		)

		t.chatView, cmd = t.chatView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		t.convForm, cmd = t.convForm.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		t.historyView, cmd = t.historyView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		t.helpView, cmd = t.helpView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		t.commandMenu, cmd = t.commandMenu.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		return t, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	switch t.state {
	case "chat/view":
		t.chatView, cmd = t.chatView.Update(msg)
	case "chat/create":
		t.convForm, cmd = t.convForm.Update(msg)
	case "chat/history":
		t.historyView, cmd = t.historyView.Update(msg)
	case "chat/help":
		t.helpView, cmd = t.helpView.Update(msg)
	case "chat/commands":
		t.commandMenu, cmd = t.commandMenu.Update(msg)
	}
	return t, cmd
}

func (t TUI) View() string {
	switch t.state {
	case "chat/view":
		return t.chatView.View()
	case "chat/create":
		return t.convForm.View()
	case "chat/history":
		return t.historyView.View()
	case "chat/help":
		return t.helpView.View()
	case "chat/commands":
		return t.commandMenu.View()
	}

	return "Error: Invalid state"
}
