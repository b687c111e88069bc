package tui

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/cj/internal/cangjie"
	"github.com/f3rmion/cj/internal/reading"
	"github.com/f3rmion/cj/internal/resolver"
	"github.com/f3rmion/cj/internal/tui/bigchar"
)

// resolvedMsg carries the outcome of an oracle lookup.
type resolvedMsg struct {
	char   string
	result *cangjie.Result
	source resolver.Source
	err    error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// copyFunc writes to the system clipboard. Tests replace it.
var copyFunc = clipboard.WriteAll

// Shell is the lookup widget. All of its state lives in this record and flows
// through Update.
type Shell struct {
	ctx      context.Context
	resolver *resolver.Resolver
	reading  *reading.Parser

	input   textinput.Model
	spinner spinner.Model

	open    bool
	loading bool
	pending string
	result  *cangjie.Result
	source  resolver.Source
	err     error
	copied  bool

	// bigGlyphs toggles block-art rendering of the result character.
	bigGlyphs bool

	width  int
	height int
}

// NewShell creates an open shell.
func NewShell(ctx context.Context, r *resolver.Resolver, p *reading.Parser) Shell {
	ti := textinput.New()
	ti.Placeholder = "快速查詢..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 8
	ti.Width = 20
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = LoadingStyle

	if p == nil {
		p = reading.NewParser()
	}

	return Shell{
		ctx:       ctx,
		resolver:  r,
		reading:   p,
		input:     ti,
		spinner:   sp,
		open:      true,
		bigGlyphs: bigchar.IsAvailable(),
	}
}

// Init initializes the model
func (m Shell) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case resolvedMsg:
		if msg.char != m.pending {
			return m, nil
		}
		m.loading = false
		m.pending = ""
		m.result = msg.result
		m.source = msg.source
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Shell) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if !m.open {
		switch msg.String() {
		case "/", "enter":
			m.open = true
			return m, m.input.Focus()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.result != nil || m.err != nil || m.loading || m.input.Value() != "" {
			// a dropped pending char makes the late resolvedMsg stale
			m.loading = false
			m.pending = ""
			m.result = nil
			m.err = nil
			m.input.Reset()
			return m, nil
		}
		m.open = false
		m.input.Blur()
		return m, nil
	case "enter":
		return m.submit(m.input.Value())
	case "ctrl+y":
		return m.copyResult()
	}

	if m.loading {
		// one lookup at a time; typing waits for the oracle
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if utf8.RuneCountInString(m.input.Value()) == 1 {
		return m.submit(m.input.Value())
	}
	return m, cmd
}

// submit resolves value. The input buffer is cleared before anything else so a
// second character cannot be submitted while the first is in flight.
func (m Shell) submit(value string) (tea.Model, tea.Cmd) {
	m.input.Reset()
	if m.loading {
		return m, nil
	}

	char, ok := resolver.Target(value)
	if !ok {
		m.result = nil
		m.err = nil
		return m, nil
	}

	m.err = nil
	if res, src, ok := m.resolver.Local(char); ok {
		m.result = res
		m.source = src
		return m, nil
	}

	m.loading = true
	m.pending = char
	return m, tea.Batch(m.resolve(char), m.spinner.Tick)
}

func (m Shell) resolve(char string) tea.Cmd {
	ctx := m.ctx
	r := m.resolver
	return func() tea.Msg {
		res, src, err := r.ResolveSource(ctx, char)
		return resolvedMsg{char: char, result: res, source: src, err: err}
	}
}

func (m Shell) copyResult() (tea.Model, tea.Cmd) {
	if m.result == nil {
		return m, nil
	}
	if err := copyFunc(m.result.Char + ":" + m.result.Code); err != nil {
		m.err = fmt.Errorf("copying to clipboard: %w", err)
		return m, nil
	}
	m.copied = true
	return m, clearCopiedAfter(2 * time.Second)
}

// View renders the UI
func (m Shell) View() string {
	if !m.open {
		return m.renderBadge()
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("查詢失敗: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.result != nil {
		b.WriteString(m.renderResult(*m.result))
		b.WriteString("\n")
	}

	b.WriteString(m.renderReference())
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())

	panel := PanelStyle.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return panel
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func (m Shell) renderHeader() string {
	return TitleStyle.Render("⚡ 倉頡碼清單")
}

func (m Shell) renderBadge() string {
	badge := BadgeStyle.Render("⚡ 倉") + "\n" + HelpStyle.Render("/ 開啟助手")
	if m.width == 0 || m.height == 0 {
		return badge
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Right, lipgloss.Bottom, badge)
}

func (m Shell) renderResult(r cangjie.Result) string {
	var lines []string

	if m.bigGlyphs {
		if art := bigchar.GetCached(r.Char, 16, 8); art != "" {
			lines = append(lines, BigCharStyle.Render(art))
		}
	}

	lines = append(lines, renderEntry(r.Char, r.Code))

	radicals := make([]string, len(r.Radicals))
	for i, rad := range r.Radicals {
		radicals[i] = RadicalStyle.Render(rad)
	}
	lines = append(lines, strings.Join(radicals, " "))

	var meta []string
	if hint := m.reading.Hint(r.Char); hint != "" {
		meta = append(meta, ReadingStyle.Render(hint))
	}
	if m.source == resolver.SourceOracle {
		meta = append(meta, SourceStyle.Render("(AI)"))
	}
	if m.copied {
		meta = append(meta, CopiedStyle.Render("已複製"))
	}
	if len(meta) > 0 {
		lines = append(lines, strings.Join(meta, "  "))
	}

	return ResultBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m Shell) renderReference() string {
	var rows []string
	for _, s := range m.resolver.Table().Symbols() {
		rows = append(rows, renderEntry(s.Char, s.Code))
	}
	return strings.Join(rows, "\n")
}

// renderEntry renders "char : code" with the character padded to two cells so
// full-width and half-width characters line up.
func renderEntry(char, code string) string {
	pad := 2 - runewidth.StringWidth(char)
	if pad < 0 {
		pad = 0
	}
	return CharStyle.Render(char) + strings.Repeat(" ", pad) +
		SeparatorStyle.Render(" : ") +
		CodeStyle.Render(code)
}

func (m Shell) renderHelp() string {
	parts := []string{"esc 清除/縮小", "enter 查詢"}
	if m.result != nil {
		parts = append(parts, "ctrl+y 複製")
	}
	parts = append(parts, "ctrl+c 離開")
	return HelpStyle.Render(strings.Join(parts, " • "))
}
