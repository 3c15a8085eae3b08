package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"faceoff/internal/card"
)

// ticketForm collects the fields of a structured ticket item. Freeform
// items come straight from the setup input; tickets need a form.
type ticketForm struct {
	form *huh.Form

	title       string
	href        string
	name        string
	description string
}

func newTicketForm() *ticketForm {
	f := &ticketForm{}

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.title),

			huh.NewInput().
				Title("Link URL").
				Placeholder("https://...").
				Value(&f.href),

			huh.NewInput().
				Title("Link name").
				Value(&f.name),

			huh.NewText().
				Title("Description").
				Value(&f.description),
		),
	)

	return f
}

func (f *ticketForm) Init() tea.Cmd {
	return f.form.Init()
}

func (f *ticketForm) Update(msg tea.Msg) tea.Cmd {
	model, cmd := f.form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		f.form = form
	}
	return cmd
}

func (f *ticketForm) View() string {
	return f.form.View()
}

func (f *ticketForm) State() huh.FormState {
	return f.form.State
}

// payload encodes the collected fields as a ticket item.
func (f *ticketForm) payload() (string, error) {
	return card.EncodeTicket(f.title, f.href, f.name, f.description)
}
