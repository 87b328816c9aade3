package main

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultTick = 33 * time.Millisecond // ~30 Hz
	defaultZoom = 2
	maxZoom     = 4

	coarseStep = 10 // cursor step with shift held
)

type tickMsg time.Time

type model struct {
	picker  *Picker
	spinner spinner.Model
	tick    time.Duration

	cursor   image.Point
	freeze   bool // pending capture action, consumed by the next tick
	unfreeze bool // pending release action

	zoom   int
	format Format
	status string
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	liveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("83"))
	frozenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newModel(p *Picker, settings Settings, tick time.Duration) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return model{
		picker:  p,
		spinner: s,
		tick:    tick,
		cursor:  initialCursor(p.backend),
		zoom:    settings.Zoom,
		format:  ParseFormat(settings.Format),
	}
}

// initialCursor starts the crosshair at the center of the first display,
// or at the origin when enumeration fails.
func initialCursor(b Backend) image.Point {
	displays, err := b.Displays()
	if err != nil || len(displays) == 0 {
		return image.Point{}
	}
	bounds := displays[0].Bounds
	return image.Pt(bounds.Min.X+bounds.Dx()/2, bounds.Min.Y+bounds.Dy()/2)
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(m.tick))
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Inputs accumulated since the last tick are handed to the state
		// machine exactly once, then cleared.
		in := Input{Cursor: m.cursor, Freeze: m.freeze, Unfreeze: m.unfreeze}
		m.freeze = false
		m.unfreeze = false
		m.picker.Tick(time.Time(msg), in)
		return m, tickCmd(m.tick)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		m.cursor.Y--
	case "down", "j":
		m.cursor.Y++
	case "left", "h":
		m.cursor.X--
	case "right", "l":
		m.cursor.X++
	case "shift+up", "K":
		m.cursor.Y -= coarseStep
	case "shift+down", "J":
		m.cursor.Y += coarseStep
	case "shift+left", "H":
		m.cursor.X -= coarseStep
	case "shift+right", "L":
		m.cursor.X += coarseStep

	case " ":
		m.freeze = true
		m.status = ""
	case "esc":
		m.unfreeze = true
		m.status = ""

	case "tab":
		m.format = m.format.Next()
	case "c", "enter":
		m.status = m.copyColor()

	case "+", "=":
		if m.zoom < maxZoom {
			m.zoom++
		}
	case "-":
		if m.zoom > 1 {
			m.zoom--
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9", "0":
		idx := int(key[0] - '1')
		if key == "0" {
			idx = 9
		}
		if history := m.picker.History(); idx < len(history) {
			m.picker.SelectHistory(history[idx])
			m.status = ""
		}
	}
	return m, nil
}

func (m model) copyColor() string {
	s := m.picker.Sample()
	if s == nil {
		return "nothing to copy yet"
	}
	text := s.Color.Encode(m.format)
	if err := clipboard.WriteAll(text); err != nil {
		return errStyle.Render("clipboard: " + err.Error())
	}
	return "copied " + text
}

func (m model) View() string {
	s := m.picker.Sample()
	if s == nil {
		return fmt.Sprintf("\n %s %s\n\n",
			m.spinner.View(),
			titleStyle.Render("Waiting for first capture..."))
	}

	var b strings.Builder
	b.WriteString("\n " + titleStyle.Render("pixelpeeker") + "\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewGrid(s),
		"  ",
		m.viewPanel(s)))
	b.WriteString("\n" + m.viewHistory())
	b.WriteString("\n" + m.viewStatus())
	return b.String()
}

func (m model) viewGrid(s *Sample) string {
	if len(s.Grid) == 0 {
		return helpStyle.Render(" (no preview for a history color)")
	}
	var b strings.Builder
	for y := 0; y < s.Window; y++ {
		b.WriteString(" ")
		for x := 0; x < s.Window; x++ {
			c := s.Grid[y*s.Window+x]
			cell := lipgloss.NewStyle().Background(lipgloss.Color(c.String()))
			if x == s.Focus.X && y == s.Focus.Y {
				b.WriteString(cell.
					Foreground(lipgloss.Color(contrast(c).String())).
					Render(pad("╳", m.zoom)))
				continue
			}
			b.WriteString(cell.Render(strings.Repeat(" ", m.zoom)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) viewPanel(s *Sample) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Position:") + "\n")
	if s.Window == 0 {
		b.WriteString("(history)\n\n")
	} else {
		b.WriteString(fmt.Sprintf("(%d, %d)\n\n", s.Point.X, s.Point.Y))
	}
	b.WriteString(labelStyle.Render("Picked color:") + "\n")
	b.WriteString(lipgloss.NewStyle().
		Background(lipgloss.Color(s.Color.String())).
		Render(strings.Repeat(" ", 10)) + "\n\n")

	for f := Format(0); f < formatCount; f++ {
		line := fmt.Sprintf("%-6s %s", f.String(), s.Color.Encode(f))
		if f == m.format {
			b.WriteString(activeStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (m model) viewHistory() string {
	history := m.picker.History()
	if len(history) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" " + labelStyle.Render("History:") + " ")
	for i, c := range history {
		key := byte('1' + i)
		if i == 9 {
			key = '0'
		}
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(c.String())).
			Foreground(lipgloss.Color(contrast(c).String())).
			Render(fmt.Sprintf(" %c ", key))
		b.WriteString(swatch + " ")
	}
	b.WriteString("\n")
	return b.String()
}

func (m model) viewStatus() string {
	var mode string
	if m.picker.Mode() == Frozen {
		mode = frozenStyle.Render("● Frozen") + helpStyle.Render(" (esc to release)")
	} else {
		mode = liveStyle.Render("● Live") + helpStyle.Render(" (space to freeze)")
	}
	help := helpStyle.Render(
		" arrows/hjkl move · shift ×10 · space freeze · esc release ·" +
			" tab format · c copy · +/- zoom · 1-0 history · q quit")
	out := " " + mode + "\n" + help + "\n"
	if m.status != "" {
		out += " " + m.status + "\n"
	}
	return out
}

// contrast picks black or white, whichever reads better over c.
func contrast(c RGB) RGB {
	luma := 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
	if luma > 128000 {
		return RGB{}
	}
	return RGB{255, 255, 255}
}

// pad centers text inside a cell of the given width.
func pad(text string, width int) string {
	if width <= 1 {
		return text
	}
	left := (width - 1) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-1-left)
}
