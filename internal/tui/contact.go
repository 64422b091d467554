package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/folio/internal/ui/theme"
	"github.com/alexisbeaulieu97/folio/internal/validation"
	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

// ContactRequest is a submitted contact form.
type ContactRequest struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Message string `form:"message" validate:"required"`
}

// Validate checks every field and returns folioerrors.ValidationErrors.
func (r ContactRequest) Validate() error {
	return validation.Struct(r)
}

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

var fieldKeys = [fieldCount]string{"name", "email", "message"}

var fieldLabels = [fieldCount]string{"Name", "Email", "Message"}

type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model

	focus   int
	editing bool
	errors  map[string]string
}

func newContactForm() contactForm {
	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = "Your name"
	name.CharLimit = 120

	email := textinput.New()
	email.Prompt = ""
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "How can I help?"
	message.ShowLineNumbers = false
	message.Prompt = ""
	message.CharLimit = 4000
	message.SetHeight(4)

	return contactForm{
		name:    name,
		email:   email,
		message: message,
		errors:  make(map[string]string),
	}
}

func (f *contactForm) setWidth(width int) {
	w := max(width-2, 10)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

func (f *contactForm) startEditing() tea.Cmd {
	f.editing = true
	return f.focusField(f.focus)
}

func (f *contactForm) stopEditing() {
	f.editing = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *contactForm) move(delta int) tea.Cmd {
	next := (f.focus + delta + fieldCount) % fieldCount
	return f.focusField(next)
}

func (f *contactForm) focusField(i int) tea.Cmd {
	f.focus = i
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch i {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	default:
		return f.message.Focus()
	}
}

// update forwards msg to the focused field.
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	default:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}

func (f *contactForm) request() ContactRequest {
	return ContactRequest{
		Name:    strings.TrimSpace(f.name.Value()),
		Email:   strings.TrimSpace(f.email.Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
}

// submit validates the form. Field errors are kept for display and the
// form is cleared on success.
func (f *contactForm) submit() (ContactRequest, error) {
	req := f.request()
	f.errors = make(map[string]string)

	if err := req.Validate(); err != nil {
		var errs folioerrors.ValidationErrors
		if errors.As(err, &errs) {
			for _, e := range errs {
				f.errors[e.Field] = e.Message
			}
		}
		return req, err
	}

	f.reset()
	return req, nil
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.errors = make(map[string]string)
	f.stopEditing()
	f.focus = fieldName
}

func (f *contactForm) fieldView(i int) string {
	switch i {
	case fieldName:
		return f.name.View()
	case fieldEmail:
		return f.email.View()
	default:
		return f.message.View()
	}
}

func (f *contactForm) view(s theme.Styles, width int) block {
	var parts []block
	for i := 0; i < fieldCount; i++ {
		box := s.Input
		if f.editing && f.focus == i {
			box = s.InputFocused
		}
		parts = append(parts,
			textBlock(s.Label.Render(fieldLabels[i])),
			textBlock(box.Width(width-2).Render(f.fieldView(i))),
		)
		if msg, ok := f.errors[fieldKeys[i]]; ok {
			parts = append(parts, textBlock(s.FieldError.Render(fieldLabels[i]+" "+msg)))
		}
	}

	hint := "i to start typing"
	if f.editing {
		hint = "tab next field · ctrl+s send · esc done"
	}
	parts = append(parts,
		spacer(1),
		textBlock(s.Button.Render("[ Send Message ]")+" "+s.Muted.Render(hint)),
	)
	return column(parts...)
}
