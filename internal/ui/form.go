package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SurajChaurasia84/TaskManager/internal/store"
	"github.com/SurajChaurasia84/TaskManager/internal/task"
)

const (
	formDateLayout = "2006-01-02"
	formTimeLayout = "15:04"
)

// addForm is the add-task screen: title, description, due date, due
// time, image path, reminder toggle.
type addForm struct {
	inputs   []textinput.Model
	focus    int
	reminder bool
	errMsg   string
}

const (
	fieldTitle = iota
	fieldDescription
	fieldDueDate
	fieldDueTime
	fieldImage
	fieldCount
)

func newAddForm() addForm {
	labels := []struct {
		placeholder string
		limit       int
	}{
		{"Task title*", 120},
		{"Task description", 500},
		{"Due date (2006-01-02)", 10},
		{"Due time (15:04)", 5},
		{"Image path (optional)", 200},
	}
	inputs := make([]textinput.Model, fieldCount)
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.CharLimit = l.limit
		inputs[i] = ti
	}
	inputs[fieldTitle].Focus()
	return addForm{inputs: inputs}
}

func (f *addForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (f *addForm) next(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

// due parses the date and time fields into an optional due instant in
// local time. An empty date with a set time means today; an empty time
// means midnight.
func (f *addForm) due(now time.Time) (*time.Time, error) {
	dateStr := strings.TrimSpace(f.inputs[fieldDueDate].Value())
	timeStr := strings.TrimSpace(f.inputs[fieldDueTime].Value())
	if dateStr == "" && timeStr == "" {
		return nil, nil
	}

	day := now
	if dateStr != "" {
		parsed, err := time.ParseInLocation(formDateLayout, dateStr, now.Location())
		if err != nil {
			return nil, err
		}
		day = parsed
	}

	clock := time.Time{}
	if timeStr != "" {
		parsed, err := time.Parse(formTimeLayout, timeStr)
		if err != nil {
			return nil, err
		}
		clock = parsed
	}

	due := time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), 0, 0, now.Location())
	return &due, nil
}

func (m *model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.screen = screenHome
		return m, nil
	case "tab", "down":
		m.form.next(1)
		return m, nil
	case "shift+tab", "up":
		m.form.next(-1)
		return m, nil
	case "ctrl+r":
		m.form.reminder = !m.form.reminder
		return m, nil
	case "enter":
		return m.submitAdd()
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m *model) submitAdd() (tea.Model, tea.Cmd) {
	due, err := m.form.due(time.Now())
	if err != nil {
		m.form.errMsg = "Date is 2006-01-02, time is 15:04"
		return m, nil
	}

	_, err = m.store.Add(m.ctx, store.Draft{
		Title:       m.form.inputs[fieldTitle].Value(),
		Description: m.form.inputs[fieldDescription].Value(),
		Image:       strings.TrimSpace(m.form.inputs[fieldImage].Value()),
		DueDateTime: due,
		Reminder:    m.form.reminder,
	})
	if err != nil {
		// The empty-title rejection: stay on the form and flag the
		// field, no mutation happened.
		m.form.errMsg = "Title is required"
		return m, nil
	}

	m.refresh()
	m.screen = screenHome
	return m, nil
}

// editForm is the in-place title/description editor on the detail
// screen.
type editForm struct {
	title  textinput.Model
	desc   textinput.Model
	focus  int
	errMsg string
}

func newEditForm(t task.Task) editForm {
	title := textinput.New()
	title.CharLimit = 120
	title.SetValue(t.Title)
	title.Focus()

	desc := textinput.New()
	desc.CharLimit = 500
	desc.SetValue(t.Description)

	return editForm{title: title, desc: desc}
}

func (m *model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	t, ok := m.detailTask()
	if !ok {
		m.screen = screenHome
		return m, nil
	}

	if m.editing {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.editing = false
			return m, nil
		case "tab", "down", "up", "shift+tab":
			if m.editForm.focus == 0 {
				m.editForm.focus = 1
				m.editForm.title.Blur()
				m.editForm.desc.Focus()
			} else {
				m.editForm.focus = 0
				m.editForm.desc.Blur()
				m.editForm.title.Focus()
			}
			return m, nil
		case "enter":
			err := m.store.Edit(m.ctx, t.ID, m.editForm.title.Value(), m.editForm.desc.Value())
			if err != nil {
				m.editForm.errMsg = "Title is required"
				return m, nil
			}
			m.editing = false
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		if m.editForm.focus == 0 {
			m.editForm.title, cmd = m.editForm.title.Update(msg)
		} else {
			m.editForm.desc, cmd = m.editForm.desc.Update(msg)
		}
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "q":
		m.screen = screenHome
		return m, nil
	case "e":
		m.editForm = newEditForm(t)
		m.editing = true
		return m, textinput.Blink
	case "r":
		m.store.ToggleReminder(m.ctx, t.ID)
		m.refresh()
		return m, nil
	case "c":
		m.store.ToggleComplete(m.ctx, t.ID)
		m.refresh()
		return m, nil
	case "d":
		m.store.Delete(m.ctx, t.ID)
		m.refresh()
		m.screen = screenHome
		return m, nil
	}
	return m, nil
}
