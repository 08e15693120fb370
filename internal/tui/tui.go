// Package tui presents and edits slideshows in the terminal.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/slides/internal/db"
	"github.com/slides/internal/editor"
)

// Play runs the full-screen player until the user quits.
func Play(show db.Slideshow) error {
	_, err := tea.NewProgram(newPlayModel(show), tea.WithAltScreen()).Run()
	return err
}

// Edit runs the editor for slug. It reports whether the user chose
// save-and-play, in which case the caller should start Play with the saved
// document.
func Edit(ctx context.Context, slug string, show db.Slideshow, saver editor.Saver) (bool, error) {
	final, err := tea.NewProgram(newEditModel(ctx, slug, show, saver), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(editModel)
	return ok && m.PlayRequested(), nil
}
