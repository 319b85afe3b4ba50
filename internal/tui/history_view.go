package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/services"
	"github.com/dustin/go-humanize"
)

// conversationItem adapts a conversation to the list widget. The entity
// cannot implement list.DefaultItem itself because Title is a field.
type conversationItem struct {
	conversation *entities.Conversation
}

func (i conversationItem) Title() string       { return i.conversation.Title }
func (i conversationItem) Description() string { return humanize.Time(i.conversation.CreatedAt) }
func (i conversationItem) FilterValue() string { return i.conversation.Title }

type HistoryView struct {
	conversationService services.ConversationService
	list                list.Model
	width               int
	height              int
	err                 error
}

func NewHistoryView(conversationService services.ConversationService) HistoryView {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("6")).Bold(true)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("7"))
	delegate.SetHeight(2)

	l := list.New([]list.Item{}, delegate, 100, 10)
	l.Title = "Conversation History"
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetShowPagination(true)

	return HistoryView{
		conversationService: conversationService,
		list:                l,
	}
}

func (h HistoryView) Init() tea.Cmd {
	return h.fetchConversationsCmd()
}

func (h HistoryView) Update(msg tea.Msg) (HistoryView, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		h.width = m.Width
		h.height = m.Height
		listHeight := m.Height - 3
		h.list.SetSize(m.Width-4, listHeight)
		return h, nil

	case conversationsFetchedMsg:
		items := make([]list.Item, len(m.conversations))
		for i, conversation := range m.conversations {
			items[i] = conversationItem{conversation: conversation}
		}
		h.list.SetItems(items)
		h.err = nil
		return h, nil

	case errMsg:
		h.err = m
		return h, nil

	case tea.KeyMsg:
		switch m.String() {
		case "esc":
			return h, func() tea.Msg { return historyCancelledMsg{} }
		case "enter":
			if selected, ok := h.list.SelectedItem().(conversationItem); ok {
				return h, func() tea.Msg { return historySelectedMsg{conversationID: selected.conversation.ID} }
			}
		}
	}

	var cmd tea.Cmd
	h.list, cmd = h.list.Update(msg)
	return h, cmd
}

func (h HistoryView) View() string {
	instructions := "Use arrows or j/k to navigate, Enter to select, Esc to cancel"
	view := h.list.View() + "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(instructions)
	if h.err != nil {
		view += lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render("\nError: " + h.err.Error())
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(view)
}

// fetchConversationsCmd loads the newest conversations asynchronously
func (h HistoryView) fetchConversationsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		conversations, err := h.conversationService.ListConversations(ctx)
		if err != nil {
			return errMsg(err)
		}
		return conversationsFetchedMsg{conversations: conversations}
	}
}
