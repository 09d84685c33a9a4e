// Copyright 2026 The Classdeck Authors
// SPDX-License-Identifier: Apache-2.0

package feedui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/classdeck-project/classdeck/classroom"
	"github.com/classdeck-project/classdeck/feed"
	"github.com/classdeck-project/classdeck/membership"
)

// FocusRegion identifies which control has keyboard focus.
type FocusRegion int

const (
	// FocusInput means keystrokes go to the compose input.
	FocusInput FocusRegion = iota
	// FocusList means navigation keys move the message cursor.
	FocusList
)

// loadResultMsg is sent when the asynchronous feed load completes. The
// window is snapshotted in the command goroutine so the event loop
// never reads feed state while a mutation is in flight.
type loadResultMsg struct {
	generation int
	window     []classroom.Message
	forbidden  bool
	err        error
}

// sendResultMsg is sent when an asynchronous send completes.
type sendResultMsg struct {
	generation int
	window     []classroom.Message
	err        error
}

// deleteResultMsg is sent when an asynchronous delete completes.
type deleteResultMsg struct {
	generation int
	window     []classroom.Message
	err        error
}

// membershipMsg is sent when a membership refresh or join request
// completes.
type membershipMsg struct {
	generation int
	status     membership.Status
	err        error
}

// Config assembles a feed viewer.
type Config struct {
	// Feed is the message window projection for the class.
	Feed *feed.Feed

	// Workflow tracks the viewer's membership in the class.
	Workflow *membership.Workflow

	// Class carries the display fields for the header.
	Class classroom.Class

	// Keys and Theme default to DefaultKeyMap and DefaultTheme.
	Keys  *KeyMap
	Theme *Theme
}

// Model is the bubbletea model for one class's feed.
type Model struct {
	feed     *feed.Feed
	workflow *membership.Workflow
	class    classroom.Class
	keys     KeyMap
	theme    Theme

	input  textinput.Model
	focus  FocusRegion
	cursor int

	// confirmDelete holds the message ID armed for deletion; pressing
	// delete a second time on the same message confirms it.
	confirmDelete int64

	// window is the event loop's snapshot of the feed; it is replaced
	// wholesale by completion messages, never mutated in place.
	window    []classroom.Message
	loaded    bool
	forbidden bool

	// busy is true while a feed or membership mutation is in flight.
	// It is the only admission control: triggering keys are ignored
	// until the completion message arrives.
	busy bool

	// generation tags every dispatched command. Reload bumps it, so a
	// completion from a superseded view is dropped on arrival.
	generation int

	notice         string
	sessionExpired bool
	width          int
	height         int
}

// New creates a feed viewer model. Nothing is fetched until Init.
func New(cfg Config) (*Model, error) {
	if cfg.Feed == nil {
		return nil, fmt.Errorf("feedui: feed is required")
	}
	if cfg.Workflow == nil {
		return nil, fmt.Errorf("feedui: membership workflow is required")
	}
	keys := DefaultKeyMap
	if cfg.Keys != nil {
		keys = *cfg.Keys
	}
	theme := DefaultTheme
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}

	input := textinput.New()
	input.Placeholder = "Type a message"
	input.Prompt = theme.Prompt.Render("> ")
	input.CharLimit = 500
	input.Focus()

	return &Model{
		feed:     cfg.Feed,
		workflow: cfg.Workflow,
		class:    cfg.Class,
		keys:     keys,
		theme:    theme,
		input:    input,
	}, nil
}

// Init kicks off the initial feed load and membership refresh.
func (m *Model) Init() tea.Cmd {
	m.busy = true
	return tea.Batch(m.loadCmd(m.generation), m.refreshCmd(m.generation), textinput.Blink)
}

// loadCmd fetches the feed window.
func (m *Model) loadCmd(generation int) tea.Cmd {
	f := m.feed
	return func() tea.Msg {
		err := f.Load(context.Background())
		return loadResultMsg{
			generation: generation,
			window:     f.Messages(),
			forbidden:  f.Forbidden(),
			err:        err,
		}
	}
}

// sendCmd posts the composed content.
func (m *Model) sendCmd(generation int, content string) tea.Cmd {
	f := m.feed
	return func() tea.Msg {
		_, err := f.Send(context.Background(), content)
		return sendResultMsg{generation: generation, window: f.Messages(), err: err}
	}
}

// deleteCmd deletes the message under the cursor.
func (m *Model) deleteCmd(generation int, messageID int64) tea.Cmd {
	f := m.feed
	return func() tea.Msg {
		err := f.Delete(context.Background(), messageID)
		return deleteResultMsg{generation: generation, window: f.Messages(), err: err}
	}
}

// refreshCmd re-derives the membership status from the server.
func (m *Model) refreshCmd(generation int) tea.Cmd {
	w := m.workflow
	return func() tea.Msg {
		err := w.Refresh(context.Background())
		return membershipMsg{generation: generation, status: w.Status(), err: err}
	}
}

// joinCmd sends a join request.
func (m *Model) joinCmd(generation int) tea.Cmd {
	w := m.workflow
	return func() tea.Msg {
		err := w.RequestJoin(context.Background())
		return membershipMsg{generation: generation, status: w.Status(), err: err}
	}
}

// Update handles bubbletea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case loadResultMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.busy = false
		m.forbidden = msg.forbidden
		if msg.err != nil {
			if m.forbidden {
				// The gate view explains itself; no error notice.
				m.notice = ""
				return m, nil
			}
			return m, m.fail(msg.err)
		}
		m.window = msg.window
		m.loaded = true
		m.clampCursor()
		m.notice = ""
		return m, nil

	case sendResultMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.window = msg.window
		m.input.Reset()
		m.notice = ""
		return m, nil

	case deleteResultMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		m.window = msg.window
		m.clampCursor()
		m.notice = ""
		return m, nil

	case membershipMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.busy = false
		if msg.err != nil {
			return m, m.fail(msg.err)
		}
		if msg.status == membership.Pending {
			m.notice = "Join request sent. A teacher has to approve it."
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sessionExpired {
		return m, tea.Quit
	}

	// Ctrl+C quits regardless of focus; q only outside the input.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.forbidden {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Join):
			if m.busy || m.workflow.Status() != membership.NotJoined {
				return m, nil
			}
			m.busy = true
			return m, m.joinCmd(m.generation)
		case key.Matches(msg, m.keys.Reload):
			return m, m.reload()
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.FocusToggle) {
		m.confirmDelete = 0
		if m.focus == FocusInput {
			m.focus = FocusList
			m.input.Blur()
		} else {
			m.focus = FocusInput
			m.input.Focus()
		}
		return m, nil
	}

	if m.focus == FocusList {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.confirmDelete = 0
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.confirmDelete = 0
			if m.cursor < len(m.window)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.confirmDelete = 0
			return m, m.reload()
		case key.Matches(msg, m.keys.Delete):
			if m.busy || m.cursor >= len(m.window) {
				return m, nil
			}
			messageID := m.window[m.cursor].ID
			if m.confirmDelete != messageID {
				m.confirmDelete = messageID
				m.notice = "Press d again to delete this message."
				return m, nil
			}
			m.confirmDelete = 0
			m.busy = true
			return m, m.deleteCmd(m.generation, messageID)
		}
		return m, nil
	}

	// Input focus: enter sends, everything else feeds the input.
	if key.Matches(msg, m.keys.Send) {
		if m.busy {
			return m, nil
		}
		content := m.input.Value()
		if strings.TrimSpace(content) == "" {
			m.notice = "Message cannot be empty."
			return m, nil
		}
		m.busy = true
		return m, m.sendCmd(m.generation, content)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// reload supersedes any in-flight operation: the generation bump makes
// its completion a no-op when it eventually arrives.
func (m *Model) reload() tea.Cmd {
	m.generation++
	m.busy = true
	m.notice = ""
	return tea.Batch(m.loadCmd(m.generation), m.refreshCmd(m.generation))
}

// fail records an operation failure. An invalid-credentials result
// means the session controller already cleared everything; the view
// switches to the expired notice and the next keypress quits.
func (m *Model) fail(err error) tea.Cmd {
	if classroom.IsInvalidCredentials(err) {
		m.sessionExpired = true
		return nil
	}
	m.notice = err.Error()
	return nil
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.window) {
		m.cursor = len(m.window) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the feed.
func (m *Model) View() string {
	if m.sessionExpired {
		return m.theme.Notice.Render("Session expired. Run `classdeck login` and try again.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch {
	case m.forbidden:
		b.WriteString(m.theme.Gate.Render("You have to join this class to access messages."))
		b.WriteString("\n\n")
		b.WriteString(m.theme.Muted.Render(m.gateHelp()))
	case !m.loaded:
		b.WriteString(m.theme.Muted.Render("Loading messages…"))
	case len(m.window) == 0:
		b.WriteString(m.theme.Muted.Render("No messages yet."))
	default:
		b.WriteString(m.renderMessages())
	}

	if !m.forbidden {
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.theme.Muted.Render(m.help()))
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Notice.Render(m.notice))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model) header() string {
	title := m.theme.Title.Render(m.class.Title)
	badge := m.theme.Badge.Render("[" + m.workflow.Status().String() + "]")
	teacher := strings.TrimSpace(m.class.TeacherFirstName + " " + m.class.TeacherLastName)
	if teacher == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", badge)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", badge, m.theme.Muted.Render(" · "+teacher))
}

func (m *Model) renderMessages() string {
	rows := make([]string, 0, len(m.window))
	for i, message := range m.window {
		author := message.FullName
		if author == "" {
			author = message.Username
		}
		row := m.theme.Author.Render(author) + " " + m.theme.Content.Render(message.Content)
		if m.focus == FocusList && i == m.cursor {
			row = m.theme.Selected.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) gateHelp() string {
	if m.workflow.Status() == membership.Pending {
		return "Your join request is pending approval · r reload · q quit"
	}
	return "Enter request to join · r reload · q quit"
}

func (m *Model) help() string {
	if m.focus == FocusList {
		return "j/k move · d delete · r reload · Tab compose · q quit"
	}
	return "Enter send · Tab message list · Ctrl+C quit"
}
