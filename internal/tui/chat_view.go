package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/drujensen/aichat/internal/domain/entities"
	"github.com/drujensen/aichat/internal/domain/services"
	"github.com/dustin/go-humanize"
)

type ChatView struct {
	messageService     services.MessageService
	activeConversation *entities.Conversation
	messages           []*entities.Message
	viewport           viewport.Model
	textarea           textarea.Model
	spinner            spinner.Model
	userStyle          lipgloss.Style
	asstStyle          lipgloss.Style
	timeStyle          lipgloss.Style
	err                error
	cancel             context.CancelFunc
	isProcessing       bool
	startTime          time.Time
	focused            string // "textarea" or "viewport"
	width              int
	height             int
}

func NewChatView(messageService services.MessageService, activeConversation *entities.Conversation) ChatView {
	ta := textarea.New()
	ta.Placeholder = "Type your message..."
	ta.Focus()
	ta.Prompt = "┃ "
	ta.SetWidth(30)
	ta.SetHeight(3)
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	vp := viewport.New(30, 5)

	us := lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	as := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	ts := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	cv := ChatView{
		messageService:     messageService,
		activeConversation: activeConversation,
		textarea:           ta,
		viewport:           vp,
		spinner:            s,
		userStyle:          us,
		asstStyle:          as,
		timeStyle:          ts,
		err:                nil,
		focused:            "textarea",
		width:              30,
		height:             5,
	}

	return cv
}

// SetConversation switches the view to another conversation and replaces
// the transcript with its messages.
func (c *ChatView) SetConversation(conversation *entities.Conversation, messages []*entities.Message) {
	c.activeConversation = conversation
	c.messages = messages
	c.refreshTranscript()
}

func (c *ChatView) SetMessages(messages []*entities.Message) {
	c.messages = messages
	c.refreshTranscript()
}

func (c *ChatView) refreshTranscript() {
	c.viewport.SetContent(lipgloss.NewStyle().Width(c.viewport.Width).Render(c.transcript()))
	c.viewport.GotoBottom()
}

func (c *ChatView) transcript() string {
	var sb strings.Builder
	for _, message := range c.messages {
		stamp := c.timeStyle.Render(" (" + humanize.Time(message.CreatedAt) + ")")
		if message.Role == entities.RoleUser {
			sb.WriteString(c.userStyle.Render("User") + stamp + ": " + message.Content + "\n")
		} else {
			sb.WriteString(c.asstStyle.Render("Assistant") + stamp + ": " + message.Content + "\n")
		}
	}
	return sb.String()
}

func (c ChatView) Init() tea.Cmd {
	c.textarea.Focus()
	c.focused = "textarea"
	return textarea.Blink
}

func (c ChatView) Update(msg tea.Msg) (ChatView, tea.Cmd) {
	var cmds []tea.Cmd

	switch m := msg.(type) {
	case tea.KeyMsg:
		if c.isProcessing {
			if m.Type == tea.KeyEsc {
				if c.cancel != nil {
					c.cancel()
					c.isProcessing = false
					c.err = fmt.Errorf("request cancelled")
					c.viewport.GotoBottom()
				}
				return c, nil
			}
			return c, nil
		}

		switch m.String() {
		case "ctrl+c":
			return c, tea.Quit
		case "esc":
			return c, nil
		case "ctrl+p":
			if c.focused == "textarea" {
				return c, func() tea.Msg { return startCommandsMsg{} }
			}
		case "enter":
			if c.focused == "textarea" {
				input := c.textarea.Value()
				if input == "" {
					c.err = fmt.Errorf("message cannot be empty")
					return c, nil
				}
				if c.activeConversation == nil {
					c.err = fmt.Errorf("no active conversation")
					return c, nil
				}
				c.textarea.Reset()
				c.err = nil
				ctx, cancel := context.WithCancel(context.Background())
				c.cancel = cancel
				c.isProcessing = true
				c.startTime = time.Now()
				return c, tea.Batch(sendMessageCmd(c.messageService, c.activeConversation.ID, input, ctx), c.spinner.Tick)
			}
		case "tab", "shift+tab":
			if c.focused == "textarea" {
				c.focused = "viewport"
				c.textarea.Blur()
			} else {
				c.focused = "textarea"
				c.textarea.Focus()
				cmd := textarea.Blink
				cmds = append(cmds, cmd)
			}
			return c, tea.Batch(cmds...)
		case "j", "down":
			if c.focused == "viewport" {
				c.viewport.ScrollDown(1)
			} else {
				var cmd tea.Cmd
				c.textarea, cmd = c.textarea.Update(m)
				if cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		case "k", "up":
			if c.focused == "viewport" {
				c.viewport.ScrollUp(1)
			} else {
				var cmd tea.Cmd
				c.textarea, cmd = c.textarea.Update(m)
				if cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		default:
			if c.focused == "textarea" {
				var cmd tea.Cmd
				c.textarea, cmd = c.textarea.Update(m)
				if cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		}

	case spinner.TickMsg:
		if c.isProcessing {
			var cmd tea.Cmd
			c.spinner, cmd = c.spinner.Update(m)
			return c, cmd
		}

	case messagesRefreshedMsg:
		c.textarea.Reset()
		c.SetMessages(m)
		c.isProcessing = false
		c.cancel = nil
		return c, nil

	case errMsg:
		c.isProcessing = false
		c.cancel = nil
		c.err = m
		return c, nil

	case tea.WindowSizeMsg:
		c.width = m.Width
		c.height = m.Height
		innerWidth := c.width - 4
		innerHeight := c.height - 4

		c.viewport.Width = innerWidth
		// Subtract textarea height (3), instructions (1), possible error (1), and adjust for borders
		c.viewport.Height = innerHeight - 3 - 1 - 1 - 2

		c.textarea.SetWidth(innerWidth)

		c.refreshTranscript()
		return c, nil
	case tea.MouseMsg:
		viewportYStart := 1
		viewportBlockHeight := c.viewport.Height + 2
		viewportYEnd := viewportYStart + viewportBlockHeight
		if m.Y >= viewportYStart && m.Y < viewportYEnd {
			switch m.Type {
			case tea.MouseWheelUp:
				c.viewport.LineUp(3)
			case tea.MouseWheelDown:
				c.viewport.LineDown(3)
			}
		}
		return c, nil
	}

	return c, tea.Batch(cmds...)
}

func (c ChatView) View() string {
	// Define border styles
	focusedBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("6")) // Bright cyan for focused

	unfocusedBorder := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("8")) // Dim gray for unfocused

	// Outer container style (Vim-like overall border)
	outerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("4")). // Blue for outer border
		Width(c.width - 2).
		Height(c.height - 2)

	var sb strings.Builder

	// Style viewport
	vpStyle := unfocusedBorder.Width(c.width - 4).Height(c.viewport.Height)
	if c.focused == "viewport" {
		vpStyle = focusedBorder.Width(c.width - 4).Height(c.viewport.Height)
	}

	if c.activeConversation == nil || len(c.messages) == 0 {
		c.viewport.SetContent(lipgloss.NewStyle().Width(c.viewport.Width).Render("How can I help you today?"))
	} else {
		c.viewport.SetContent(lipgloss.NewStyle().Width(c.viewport.Width).Render(c.transcript()))
	}
	sb.WriteString(vpStyle.Render(c.viewport.View()))

	// Style textarea
	taStyle := unfocusedBorder.Width(c.width - 4).Height(c.textarea.Height())
	if c.focused == "textarea" {
		taStyle = focusedBorder.Width(c.width - 4).Height(c.textarea.Height())
	}
	sb.WriteString(taStyle.Render(c.textarea.View()))

	if c.isProcessing {
		elapsed := time.Since(c.startTime).Round(time.Second)
		sb.WriteString("\n" + c.spinner.View() + fmt.Sprintf(" Thinking... (%ds)", int(elapsed.Seconds())))
	} else {
		instructions := "Press Ctrl+P for menu, Tab to switch focus, j/k to navigate, Ctrl+C to exit."
		sb.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render(instructions))
	}

	// Render error if any
	if c.err != nil {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Render(fmt.Sprintf("\n%s", c.err.Error())))
	}

	// Wrap everything in the outer border
	return outerStyle.Render(sb.String())
}

func sendMessageCmd(ms services.MessageService, conversationID, content string, ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		_, err := ms.SendMessage(ctx, conversationID, content)
		if err != nil {
			return errMsg(err)
		}
		messages, err := ms.ListMessages(ctx, conversationID)
		if err != nil {
			return errMsg(err)
		}
		return messagesRefreshedMsg(messages)
	}
}
