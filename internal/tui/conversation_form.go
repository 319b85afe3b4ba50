package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/drujensen/aichat/internal/domain/services"
)

var ErrEmptyTitle = errors.New("conversation title cannot be empty")

type ConversationForm struct {
	conversationService services.ConversationService
	titleField          textinput.Model
	err                 error
	width               int
	height              int
}

func NewConversationForm(conversationService services.ConversationService) ConversationForm {
	titleField := textinput.New()
	titleField.Placeholder = "Enter conversation title"
	titleField.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	titleField.Focus()
	titleField.CharLimit = 50
	titleField.Width = 50

	return ConversationForm{
		conversationService: conversationService,
		titleField:          titleField,
	}
}

func (c *ConversationForm) SetTitle(title string) {
	c.titleField.SetValue(title)
}

func (c ConversationForm) Init() tea.Cmd {
	c.titleField.Focus()
	return textinput.Blink
}

func (c ConversationForm) Update(msg tea.Msg) (ConversationForm, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = m.Width
		c.height = m.Height
		c.titleField.Width = m.Width - 4
		return c, nil

	case tea.KeyMsg:
		switch m.String() {
		case "esc":
			return c, func() tea.Msg { return canceledCreateConversationMsg{} }
		case "enter":
			if strings.TrimSpace(c.titleField.Value()) == "" {
				c.err = ErrEmptyTitle
				return c, nil
			}
			return c, createConversationCmd(c.conversationService, c.titleField.Value())
		}

	case errMsg:
		c.err = m
		return c, nil
	}

	var cmd tea.Cmd
	c.titleField, cmd = c.titleField.Update(msg)
	return c, cmd
}

func (c ConversationForm) View() string {

	if c.width == 0 || c.height == 0 {
		return ""
	}

	focusedBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("6"))

	outerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("4")).
		Width(c.width - 2).
		Height(c.height - 2).
		Padding(1)

	var sb strings.Builder

	sb.WriteString("Conversation Title:\n")
	sb.WriteString(focusedBorder.Width(c.width - 4).Render(c.titleField.View()))
	sb.WriteString("\n\n")

	instructions := "Press Enter to create conversation, Esc to cancel"
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(instructions + "\n"))

	if c.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render(fmt.Sprintf("\nError: %s\n", c.err.Error())))
	}

	return outerStyle.Render(sb.String())
}

func createConversationCmd(cs services.ConversationService, title string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		conversation, err := cs.CreateConversation(ctx, title, "console")
		if err != nil {
			return errMsg(err)
		}
		return conversationCreatedMsg(conversation)
	}
}
