package finder

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wangjing53406/navi/internal/domain"
)

const maxVisible = 15

var (
	cursorStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("237"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// Builtin is a bubbletea picker that needs no external binary.
// It draws on stderr so stdout stays free for the selected command.
type Builtin struct {
	isTerminal func() bool
	run        func(m tea.Model) (tea.Model, error)
}

func NewBuiltin() *Builtin {
	return &Builtin{
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		},
		run: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithAltScreen()).Run()
		},
	}
}

func (b *Builtin) Choose(lines []string, opts domain.FinderOptions) (string, error) {
	if !b.isTerminal() {
		return "", errors.New("builtin finder requires an interactive terminal")
	}

	final, err := b.run(newPickerModel(lines, opts))
	if err != nil {
		return "", fmt.Errorf("builtin finder: %w", err)
	}

	m := final.(pickerModel)
	if m.cancelled || m.chosen == "" {
		return "", ErrCancelled
	}
	return m.chosen, nil
}

var _ domain.Finder = (*Builtin)(nil)

type pickerModel struct {
	input       textinput.Model
	lines       []string
	display     map[string]string
	header      string
	matches     []string
	cursor      int
	multi       bool
	acceptQuery bool
	marked      map[string]bool
	chosen      string
	cancelled   bool
}

func newPickerModel(lines []string, opts domain.FinderOptions) pickerModel {
	in := textinput.New()
	in.Prompt = "> "
	if opts.Prompt != "" {
		in.Prompt = opts.Prompt + "> "
	}
	in.SetValue(opts.Query)
	in.Focus()

	display := make(map[string]string, len(lines))
	for _, l := range lines {
		display[l] = displayLine(l, opts.Delimiter)
	}

	m := pickerModel{
		input:       in,
		lines:       lines,
		display:     display,
		header:      opts.Header,
		multi:       opts.Multi,
		acceptQuery: opts.AcceptQuery,
		marked:      map[string]bool{},
	}
	m.filter()
	return m
}

// displayLine replaces the field delimiter with spacing.
func displayLine(line, delimiter string) string {
	if delimiter == "" {
		return line
	}
	return strings.ReplaceAll(line, delimiter, "  ")
}

func (m *pickerModel) filter() {
	m.matches = Rank(m.input.Value(), m.lines)
	if m.cursor >= len(m.matches) {
		m.cursor = max(len(m.matches)-1, 0)
	}
}

// selection is what Enter returns: the marked lines in input order, else the
// line under the cursor, else the typed query when that is accepted.
func (m pickerModel) selection() string {
	if m.multi {
		var picked []string
		for _, l := range m.lines {
			if m.marked[l] {
				picked = append(picked, l)
			}
		}
		if len(picked) > 0 {
			return strings.Join(picked, "\n")
		}
	}
	if len(m.matches) > 0 {
		return m.matches[m.cursor]
	}
	if m.acceptQuery && strings.TrimSpace(m.input.Value()) != "" {
		return m.input.Value()
	}
	return ""
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.chosen = m.selection()
			m.cancelled = m.chosen == ""
			return m, tea.Quit
		case tea.KeyTab:
			if m.multi && len(m.matches) > 0 {
				line := m.matches[m.cursor]
				m.marked[line] = !m.marked[line]
				if m.cursor < len(m.matches)-1 {
					m.cursor++
				}
			}
			return m, nil
		case tea.KeyUp, tea.KeyCtrlP:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case tea.KeyDown, tea.KeyCtrlN:
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.cursor = 0
		m.filter()
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("  %d/%d", len(m.matches), len(m.lines))))
	b.WriteString("\n")
	if m.header != "" {
		b.WriteString(headerStyle.Render(m.header))
		b.WriteString("\n")
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))

	for i := start; i < end; i++ {
		line := m.display[m.matches[i]]
		if m.marked[m.matches[i]] {
			line = "+ " + line
		}
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return b.String()
}
