package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator shown while subprocesses
// run. In headless mode it degrades to plain log lines.
type Spinner interface {
	// SetTitle updates the spinner title.
	SetTitle(title string)

	// Stop halts the spinner and prints the final message.
	Stop(message string)
}

// NewSpinner creates a Spinner appropriate for the environment: an
// animated bubbles spinner on a TTY, plain text otherwise. All output
// goes to out; the spinner never reads input, so stdin stays available
// for subprocesses running underneath it.
func NewSpinner(theme *Theme, hm *HeadlessManager, out io.Writer, title string) Spinner {
	if hm.IsHeadless() || theme.NoColor {
		return newHeadlessSpinner(theme, title, out)
	}
	return newInteractiveSpinner(theme, title, out)
}

// --- interactive spinner ---

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	theme   *Theme
	program *tea.Program
	out     io.Writer
	once    sync.Once
}

// newInteractiveSpinner starts a render-only bubbletea program. Input is
// detached: the attached installers own stdin and may prompt, so the
// spinner must not put the terminal in raw mode or consume keystrokes.
func newInteractiveSpinner(theme *Theme, title string, out io.Writer) *interactiveSpinner {
	m := newSpinnerModel(theme, title)
	p := tea.NewProgram(m, tea.WithInput(nil), tea.WithOutput(out))

	s := &interactiveSpinner{theme: theme, program: p, out: out}

	go func() {
		_, _ = p.Run()
	}()

	return s
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner and prints the final message.
func (s *interactiveSpinner) Stop(message string) {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
	if message != "" {
		fmt.Fprintln(s.out, s.theme.Success(message))
	}
}

// --- headless spinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	theme  *Theme
	writer io.Writer
}

func newHeadlessSpinner(theme *Theme, title string, w io.Writer) *headlessSpinner {
	s := &headlessSpinner{theme: theme, writer: w}
	if title != "" {
		fmt.Fprintln(w, title)
	}
	return s
}

// SetTitle prints the new title as a log line.
func (s *headlessSpinner) SetTitle(title string) {
	fmt.Fprintln(s.writer, title)
}

// Stop prints the final message.
func (s *headlessSpinner) Stop(message string) {
	if message != "" {
		fmt.Fprintln(s.writer, message)
	}
}
