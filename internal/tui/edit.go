package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/slides/internal/db"
	"github.com/slides/internal/editor"
)

type editFocus int

const (
	focusTitle editFocus = iota
	focusImage
	focusText
	focusCount
)

type editModel struct {
	ctx     context.Context
	session *editor.Session
	saver   editor.Saver

	title textinput.Model
	image textinput.Model
	text  textarea.Model
	focus editFocus

	status        string
	failed        bool
	playRequested bool
}

func newEditModel(ctx context.Context, slug string, show db.Slideshow, saver editor.Saver) editModel {
	session := editor.New(slug, show)
	// A fresh draft gets one slide so typing has somewhere to go.
	if session.Len() == 0 {
		session.AddSlide()
	}

	m := editModel{
		ctx:     ctx,
		session: session,
		saver:   saver,
		title:   textinput.New(),
		image:   textinput.New(),
		text:    textarea.New(),
		focus:   focusText,
	}
	m.title.Prompt = "Title: "
	m.title.SetValue(session.Title())
	m.title.CursorEnd()
	m.image.Prompt = "Image: "
	m.image.Placeholder = "https://"
	m.text.Placeholder = "Slide text (markdown)"
	m.text.ShowLineNumbers = false
	m.text.SetHeight(10)
	m.loadFields()
	m.applyFocus()
	return m
}

func (m editModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.title.Width = msg.Width - 12
		m.image.Width = msg.Width - 12
		m.text.SetWidth(msg.Width - 4)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % focusCount
			m.applyFocus()
			return m, nil
		case "shift+tab":
			m.focus = (m.focus + focusCount - 1) % focusCount
			m.applyFocus()
			return m, nil
		case "ctrl+n":
			m.storeFields()
			m.session.AddSlide()
			m.loadFields()
			m.setStatus(fmt.Sprintf("Added slide %d", m.session.Len()), false)
			return m, nil
		case "ctrl+x":
			m.storeFields()
			if err := m.session.DeleteSlide(); err != nil {
				m.setStatus(deleteSlideMessage(err), true)
				return m, nil
			}
			m.loadFields()
			m.setStatus("Slide deleted", false)
			return m, nil
		case "pgup":
			m.selectSlide(m.session.Current() - 1)
			return m, nil
		case "pgdown":
			m.selectSlide(m.session.Current() + 1)
			return m, nil
		case "ctrl+s":
			m.storeFields()
			if err := m.session.Save(m.ctx, m.saver); err != nil {
				m.setStatus("Save failed: "+err.Error(), true)
				return m, nil
			}
			m.setStatus("Saved", false)
			return m, nil
		case "ctrl+p":
			m.storeFields()
			err := m.session.PlayNow(m.ctx, m.saver, func(string) {
				m.playRequested = true
			})
			if err != nil {
				m.setStatus("Save failed: "+err.Error(), true)
				return m, nil
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusImage:
		m.image, cmd = m.image.Update(msg)
	case focusText:
		m.text, cmd = m.text.Update(msg)
	}
	return m, cmd
}

func (m editModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Editing " + m.session.Slug()))
	b.WriteString("\n\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\n")

	markers := make([]string, 0, m.session.Len())
	for i := 0; i < m.session.Len(); i++ {
		label := fmt.Sprintf(" %d ", i+1)
		if i == m.session.Current() {
			label = statusStyle.Render(fmt.Sprintf("[%d]", i+1))
		}
		markers = append(markers, label)
	}
	b.WriteString("Slides: " + strings.Join(markers, ""))
	b.WriteString("\n\n")
	b.WriteString(m.image.View())
	b.WriteString("\n\n")
	b.WriteString(m.text.View())
	b.WriteString("\n\n")

	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("tab field · ctrl+n add · ctrl+x delete · pgup/pgdn slide · ctrl+s save · ctrl+p save & play · esc quit"))
	return panelStyle.Render(b.String())
}

// PlayRequested reports whether the user asked to play after a successful
// save.
func (m editModel) PlayRequested() bool {
	return m.playRequested
}

func (m *editModel) selectSlide(i int) {
	if i < 0 || i >= m.session.Len() {
		return
	}
	m.storeFields()
	m.session.Select(i)
	m.loadFields()
	m.status = ""
}

func (m *editModel) storeFields() {
	m.session.SetTitle(m.title.Value())
	m.session.SetFields(editor.Fields{Image: m.image.Value(), Text: m.text.Value()})
}

func (m *editModel) loadFields() {
	fields := m.session.Fields()
	m.image.SetValue(fields.Image)
	m.image.CursorEnd()
	m.text.SetValue(fields.Text)
}

func (m *editModel) applyFocus() {
	m.title.Blur()
	m.image.Blur()
	m.text.Blur()
	switch m.focus {
	case focusTitle:
		m.title.Focus()
	case focusImage:
		m.image.Focus()
	case focusText:
		m.text.Focus()
	}
}

func (m *editModel) setStatus(msg string, failed bool) {
	m.status = msg
	m.failed = failed
}

func deleteSlideMessage(err error) string {
	if errors.Is(err, editor.ErrLastSlide) {
		return "Cannot delete the last slide"
	}
	return err.Error()
}
