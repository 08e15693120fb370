package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/slides/internal/db"
	"github.com/slides/internal/playback"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5f9fb0"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d"))
	imageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#f39c12"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#28a745")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc3545")).Bold(true)
	panelStyle  = lipgloss.NewStyle().Padding(1, 2)
)

type playModel struct {
	title  string
	slides []db.Slide
	ctrl   *playback.Controller
	width  int
	height int
}

func newPlayModel(show db.Slideshow) playModel {
	return playModel{
		title:  show.Title,
		slides: show.Slides,
		ctrl:   playback.New(len(show.Slides)),
		width:  80,
		height: 24,
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "l":
			m.ctrl.Next()
		case "h":
			m.ctrl.Previous()
		default:
			m.ctrl.HandleKey(key)
		}
	}
	return m, nil
}

func (m playModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if m.ctrl.Len() == 0 {
		b.WriteString(mutedStyle.Render("This slideshow has no slides yet."))
	} else {
		slide := m.slides[m.ctrl.Current()]
		if slide.Image != "" {
			b.WriteString(imageStyle.Render("[image] " + slide.Image))
			b.WriteString("\n\n")
		}
		b.WriteString(renderMarkdown(slide.Text, m.width-4))
	}

	position := 0
	if m.ctrl.Len() > 0 {
		position = m.ctrl.Current() + 1
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d / %d   ←/→ navigate · q quit", position, m.ctrl.Len())))
	return panelStyle.Render(b.String())
}
