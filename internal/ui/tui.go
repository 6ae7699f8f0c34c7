// Package ui provides the terminal interface: onboarding, the home
// list, the day-grouped list, reminders, and the add/detail forms. All
// screens render projections of store snapshots and re-read after
// every mutation.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SurajChaurasia84/TaskManager/internal/store"
	"github.com/SurajChaurasia84/TaskManager/internal/task"
)

// Run starts the TUI over the given store and app state.
func Run(ctx context.Context, st *store.Store, state *store.AppState) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	if _, err := st.Load(ctx); err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}

	model := newModel(ctx, st, state)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type screen int

const (
	screenWelcome screen = iota
	screenHome
	screenAll
	screenReminders
	screenAdd
	screenDetail
)

// filterMode selects the home list's base projection.
type filterMode int

const (
	filterToday filterMode = iota
	filterAll
)

// allSort selects the ordering of the day-grouped list.
type allSort int

const (
	allGrouped allSort = iota
	allNewestFirst
	allOldestFirst
	allUpcoming
)

type model struct {
	ctx   context.Context
	store *store.Store
	state *store.AppState

	screen screen
	width  int
	height int

	tasks []task.Task

	// home
	cursor       int
	filter       filterMode
	selectedDate time.Time
	search       textinput.Model
	searching    bool
	confirmDel   bool
	delTarget    task.Task
	showHelp     bool

	// all-tasks
	sortMode allSort

	// welcome
	nameInput  textinput.Model
	welcomeErr string

	// add form
	form addForm

	// detail
	detailID string
	editing  bool
	editForm editForm
}

func newModel(ctx context.Context, st *store.Store, state *store.AppState) *model {
	search := textinput.New()
	search.Placeholder = "Search Tasks"
	search.Prompt = "/ "
	search.CharLimit = 120

	name := textinput.New()
	name.Placeholder = "Enter your name"
	name.CharLimit = 60
	name.Focus()

	m := &model{
		ctx:          ctx,
		store:        st,
		state:        state,
		screen:       screenHome,
		selectedDate: time.Now(),
		search:       search,
		nameInput:    name,
		form:         newAddForm(),
	}
	if !state.HasLaunched {
		m.screen = screenWelcome
	}
	m.refresh()
	return m
}

// refresh re-reads the store snapshot and clamps the cursor.
func (m *model) refresh() {
	m.tasks = m.store.Tasks()
	if n := len(m.visibleTasks()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visibleTasks is the home list: date filter then search filter.
func (m *model) visibleTasks() []task.Task {
	base := m.tasks
	if m.filter == filterToday {
		base = task.DueOn(m.tasks, m.selectedDate)
	}
	return task.Search(base, m.search.Value())
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch m.screen {
		case screenWelcome:
			return m.updateWelcome(msg)
		case screenHome:
			return m.updateHome(msg)
		case screenAll:
			return m.updateAll(msg)
		case screenReminders:
			return m.updateReminders(msg)
		case screenAdd:
			return m.updateAdd(msg)
		case screenDetail:
			return m.updateDetail(msg)
		}
	}
	return m, nil
}

func (m *model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		if err := m.state.CompleteOnboarding(m.ctx, m.nameInput.Value()); err != nil {
			m.welcomeErr = "Please enter your name"
			return m, nil
		}
		m.welcomeErr = ""
		m.screen = screenHome
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation intercepts everything.
	if m.confirmDel {
		switch msg.String() {
		case "y", "enter":
			m.store.Delete(m.ctx, m.delTarget.ID)
			m.confirmDel = false
			m.refresh()
		case "n", "esc":
			m.confirmDel = false
		}
		return m, nil
	}

	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.cursor = 0
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "h", "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "f", "tab":
		if m.filter == filterToday {
			m.filter = filterAll
		} else {
			m.filter = filterToday
		}
		m.cursor = 0
		return m, nil
	case "left":
		m.selectedDate = m.selectedDate.AddDate(0, 0, -1)
		m.cursor = 0
		return m, nil
	case "right":
		m.selectedDate = m.selectedDate.AddDate(0, 0, 1)
		m.cursor = 0
		return m, nil
	case "t":
		m.selectedDate = time.Now()
		m.cursor = 0
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}
		return m, nil
	case "c", " ":
		if t, ok := m.selected(); ok {
			m.store.ToggleComplete(m.ctx, t.ID)
			m.refresh()
		}
		return m, nil
	case "r":
		if t, ok := m.selected(); ok {
			m.store.ToggleReminder(m.ctx, t.ID)
			m.refresh()
		}
		return m, nil
	case "d":
		if t, ok := m.selected(); ok {
			m.delTarget = t
			m.confirmDel = true
		}
		return m, nil
	case "a":
		m.form = newAddForm()
		m.screen = screenAdd
		return m, m.form.focusCmd()
	case "enter":
		if t, ok := m.selected(); ok {
			m.openDetail(t.ID)
		}
		return m, nil
	case "g":
		m.sortMode = allGrouped
		m.screen = screenAll
		return m, nil
	case "n":
		m.screen = screenReminders
		return m, nil
	}
	return m, nil
}

func (m *model) updateAll(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.screen = screenHome
		return m, nil
	case "1":
		m.sortMode = allGrouped
	case "2":
		m.sortMode = allNewestFirst
	case "3":
		m.sortMode = allOldestFirst
	case "4":
		m.sortMode = allUpcoming
	}
	return m, nil
}

func (m *model) updateReminders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.screen = screenHome
	}
	return m, nil
}

func (m *model) selected() (task.Task, bool) {
	visible := m.visibleTasks()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return task.Task{}, false
	}
	return visible[m.cursor], true
}

func (m *model) openDetail(id string) {
	m.detailID = id
	m.editing = false
	m.screen = screenDetail
}

// detailTask resolves the open detail ID against the latest snapshot.
func (m *model) detailTask() (task.Task, bool) {
	t := task.Find(m.tasks, m.detailID)
	if t == nil {
		return task.Task{}, false
	}
	return *t, true
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
