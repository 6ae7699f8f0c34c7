package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SurajChaurasia84/TaskManager/internal/task"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	sectionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Strikethrough(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("35")).Bold(true)
)

func (m *model) View() string {
	switch m.screen {
	case screenWelcome:
		return m.viewWelcome()
	case screenAll:
		return m.viewAll()
	case screenReminders:
		return m.viewReminders()
	case screenAdd:
		return m.viewAdd()
	case screenDetail:
		return m.viewDetail()
	default:
		return m.viewHome()
	}
}

func (m *model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to Task Manager") + "\n\n")
	b.WriteString("Organize your tasks, set reminders, and never miss a deadline.\n\n")
	b.WriteString(m.nameInput.View() + "\n\n")
	if m.welcomeErr != "" {
		b.WriteString(errStyle.Render(m.welcomeErr) + "\n\n")
	}
	b.WriteString(dimStyle.Render("enter to get started | ctrl+c to quit") + "\n")
	return b.String()
}

func (m *model) viewHome() string {
	var b strings.Builder

	greeting := "Hello!"
	if m.state.Username != "" {
		greeting = "Hello! " + m.state.Username
	}
	b.WriteString(titleStyle.Render(greeting) + "\n")

	if m.showHelp {
		writeHomeHelp(&b)
		return b.String()
	}

	todays := task.DueOn(m.tasks, m.selectedDate)
	base := m.tasks
	scope := "All Tasks"
	if m.filter == filterToday {
		base = todays
		scope = m.selectedDate.Format("Jan 2, 2006")
	}
	b.WriteString(dimStyle.Render("Showing tasks for: "+scope) + "\n\n")

	completed, total := task.Progress(base)
	pct := 0
	if total > 0 {
		pct = completed * 100 / total
	}
	b.WriteString(sectionStyle.Render("Progress") + "\n")
	b.WriteString(fmt.Sprintf("  %s %d%%  %d of %d tasks completed\n\n",
		progressBar(pct, 20), pct, completed, total))

	b.WriteString(m.search.View() + "\n\n")

	header := "Today's Tasks"
	if m.filter == filterAll {
		header = "All Tasks"
	}
	b.WriteString(sectionStyle.Render(header) + "\n")

	visible := m.visibleTasks()
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("  No tasks found.") + "\n")
	}
	for i, t := range visible {
		b.WriteString(m.renderTaskLine(t, i == m.cursor) + "\n")
	}
	b.WriteString("\n")

	if m.confirmDel {
		b.WriteString(errStyle.Render(fmt.Sprintf("Delete %q? (y/n)", m.delTarget.Title)) + "\n")
	} else {
		b.WriteString(dimStyle.Render("a add | c complete | r reminder | d delete | enter details | f filter | / search | g all | n reminders | h help | q quit") + "\n")
	}
	return b.String()
}

func (m *model) renderTaskLine(t task.Task, selected bool) string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	bell := " "
	if t.Reminder {
		bell = "!"
	}
	due := ""
	if t.DueDateTime != nil {
		due = t.DueDateTime.Local().Format("15:04")
	}

	title := t.Title
	if t.Completed {
		title = doneStyle.Render(title)
	}
	line := fmt.Sprintf("  %s %s %s", check, bell, title)
	if due != "" {
		line += dimStyle.Render("  " + due)
	}
	if selected {
		return selectedStyle.Render("> ") + line
	}
	return "  " + line
}

func (m *model) viewAll() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("All Tasks") + "\n\n")

	now := time.Now()
	switch m.sortMode {
	case allNewestFirst, allOldestFirst:
		for _, t := range task.SortByDue(m.tasks, m.sortMode == allNewestFirst) {
			b.WriteString(m.renderTaskLine(t, false) + "\n")
		}
	case allUpcoming:
		upcoming := task.SortByDue(task.Upcoming(m.tasks, now), false)
		if len(upcoming) == 0 {
			b.WriteString(dimStyle.Render("  No upcoming tasks.") + "\n")
		}
		for _, t := range upcoming {
			b.WriteString(m.renderTaskLine(t, false) + "\n")
		}
	default:
		groups := task.GroupByDay(m.tasks, now)
		if len(groups) == 0 {
			b.WriteString(dimStyle.Render("  No tasks yet.") + "\n")
		}
		for _, g := range groups {
			b.WriteString(labelStyle.Render(g.Label) + "\n")
			for _, t := range g.Tasks {
				b.WriteString(m.renderTaskLine(t, false) + "\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("1 grouped | 2 newest | 3 oldest | 4 upcoming | esc back") + "\n")
	return b.String()
}

func (m *model) viewReminders() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Reminders") + "\n\n")

	upcoming := task.UpcomingReminders(m.tasks, time.Now())
	if len(upcoming) == 0 {
		b.WriteString(dimStyle.Render("  No upcoming reminders.") + "\n")
	}
	for _, t := range upcoming {
		desc := t.Description
		if desc == "" {
			desc = "No description"
		}
		b.WriteString(fmt.Sprintf("  %s\n", titleStyle.Render(t.Title)))
		b.WriteString(fmt.Sprintf("    %s\n", dimStyle.Render(desc)))
		b.WriteString(fmt.Sprintf("    %s\n", dimStyle.Render(t.DueDateTime.Local().Format("Jan 2, 2006 15:04"))))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("esc back") + "\n")
	return b.String()
}

func (m *model) viewAdd() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Add New Task") + "\n\n")
	for _, in := range m.form.inputs {
		b.WriteString(in.View() + "\n")
	}
	reminder := "off"
	if m.form.reminder {
		reminder = "on"
	}
	b.WriteString(fmt.Sprintf("\nReminder: %s (ctrl+r to toggle)\n", reminder))
	if m.form.errMsg != "" {
		b.WriteString(errStyle.Render(m.form.errMsg) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter add | tab next field | esc cancel") + "\n")
	return b.String()
}

func (m *model) viewDetail() string {
	t, ok := m.detailTask()
	if !ok {
		return "Task not found.\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Task Details") + "\n\n")

	if m.editing {
		b.WriteString(m.editForm.title.View() + "\n")
		b.WriteString(m.editForm.desc.View() + "\n")
		if m.editForm.errMsg != "" {
			b.WriteString(errStyle.Render(m.editForm.errMsg) + "\n")
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter save | tab switch field | esc discard") + "\n")
		return b.String()
	}

	b.WriteString(titleStyle.Render(t.Title) + "\n")
	if t.DueDateTime != nil {
		b.WriteString(dimStyle.Render(t.DueDateTime.Local().Format("Jan 2, 2006 15:04")) + "\n")
	} else {
		b.WriteString(dimStyle.Render("No due date") + "\n")
	}
	if t.Description != "" {
		b.WriteString("\n" + t.Description + "\n")
	}
	if t.Image != "" {
		b.WriteString("\n" + dimStyle.Render("Image: "+t.Image) + "\n")
	}
	status := make([]string, 0, 2)
	if t.Completed {
		status = append(status, "completed")
	}
	if t.Reminder {
		status = append(status, "reminder on")
	}
	if len(status) > 0 {
		b.WriteString("\n" + labelStyle.Render(strings.Join(status, ", ")) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("e edit | c complete | r reminder | d delete | esc back") + "\n")
	return b.String()
}

func writeHomeHelp(b *strings.Builder) {
	b.WriteString("\nKeyboard Shortcuts\n\n")
	b.WriteString("  a            Add a task\n")
	b.WriteString("  c, space     Toggle complete\n")
	b.WriteString("  r            Toggle reminder\n")
	b.WriteString("  d            Delete (with confirm)\n")
	b.WriteString("  enter        Task details\n")
	b.WriteString("  f, tab       Today / All filter\n")
	b.WriteString("  left/right   Previous / next day\n")
	b.WriteString("  t            Jump to today\n")
	b.WriteString("  /            Search\n")
	b.WriteString("  g            Day-grouped list\n")
	b.WriteString("  n            Upcoming reminders\n")
	b.WriteString("  h, ?         Toggle this help\n")
	b.WriteString("  q, ctrl+c    Quit\n")
}

func progressBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
