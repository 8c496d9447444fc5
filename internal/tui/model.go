package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Elias-Missa/ascendency-rpg/internal/engine"
	"github.com/Elias-Missa/ascendency-rpg/internal/storage"
	"github.com/Elias-Missa/ascendency-rpg/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	today   engine.Date
	profile *storage.Profile
	tasks   []storage.Task

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile *storage.Profile
	tasks   []storage.Task
	err     error
}

type completedMsg struct {
	res *engine.CompleteResult
	err error
}

type generatedMsg struct {
	count int
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		today:   engine.Today(),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.ProfileRepo().GetOrCreate(m.ctx, m.svc.UserID())
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.TaskRepo().ListByDate(m.ctx, m.svc.UserID(), m.today.String())
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{profile: p, tasks: tasks}
	}
}

func (m boardModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id, m.today)
		return completedMsg{res: res, err: err}
	}
}

func (m boardModel) generateCmd() tea.Cmd {
	return func() tea.Msg {
		tasks, err := m.svc.GenerateTasks(m.ctx, m.today)
		return generatedMsg{count: len(tasks), err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.tasks = msg.tasks
		if m.selected >= len(m.tasks) {
			m.selected = len(m.tasks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil

	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = completionLog(msg.res)
		return m, m.loadCmd()

	case generatedMsg:
		if msg.err != nil {
			m.lastLog = "Generate failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Generated %d tasks.", msg.count)
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "g":
			m.lastLog = "Generating…"
			return m, m.generateCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.tasks)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected >= 0 && m.selected < len(m.tasks) {
				t := m.tasks[m.selected]
				if t.IsCompleted {
					m.lastLog = "Already completed."
					return m, nil
				}
				m.lastLog = "Completing…"
				return m, m.completeCmd(t.ID)
			}
			return m, nil
		}
	}
	return m, nil
}

func completionLog(res *engine.CompleteResult) string {
	if res.AlreadyCompleted {
		return fmt.Sprintf("Already completed: %s", res.TaskName)
	}
	parts := []string{fmt.Sprintf("%s +%d XP", res.TaskName, res.XPAwarded)}
	if res.LeveledUp {
		parts = append(parts, fmt.Sprintf("%s → level %d", ui.BadgeLevelUp, res.NewLevel))
	}
	if ev := res.StreakEvent; ev != nil {
		if ev.Type == engine.StreakBest {
			parts = append(parts, fmt.Sprintf("%s %d-day streak (new best!)", ui.IconFlame, ev.Count))
		} else {
			parts = append(parts, fmt.Sprintf("%s %d-day streak", ui.IconFlame, ev.Count))
		}
	}
	return strings.Join(parts, "  ")
}

func (m boardModel) View() string {
	if m.loading && m.profile == nil {
		return ui.Muted.Render("Loading…")
	}
	if m.err != nil && m.profile == nil {
		return ui.Bad.Render(ui.IconError + " " + m.err.Error())
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.taskListView())
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("↑/↓ move · enter complete · g generate · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(m.lastLog))

	return b.String()
}

func (m boardModel) headerView() string {
	p := m.profile
	level := engine.LevelForXP(p.CurrentXP)
	within := engine.XPWithinLevel(p.CurrentXP)

	line1 := fmt.Sprintf("%s  %s",
		ui.Heading(ui.IconBolt, fmt.Sprintf("Level %d Hunter", level)),
		ui.Muted.Render(fmt.Sprintf("%d/%d XP · %d total", within, engine.XPPerLevel, p.CurrentXP)))
	line2 := ui.ProgressBar(engine.ProgressFraction(p.CurrentXP), 30)
	line3 := ui.StreakBadge(p.CurrentStreak, p.BestStreak)

	return ui.Panel.Render(line1 + "\n" + line2 + "\n" + line3)
}

func (m boardModel) taskListView() string {
	title := fmt.Sprintf("%s Daily quests — %s", ui.IconCalendar, m.today)
	if len(m.tasks) == 0 {
		return ui.Panel.Render(ui.H2.Render(title) + "\n" + ui.Muted.Render("No tasks assigned. Press g to generate."))
	}

	var rows []string
	done := 0
	for i, t := range m.tasks {
		if t.IsCompleted {
			done++
		}
		row := fmt.Sprintf("%s %s %s", ui.CheckBox(t.IsCompleted), t.Name, ui.Gold.Render(fmt.Sprintf("+%d XP", t.XPReward)))
		if i == m.selected {
			row = ui.SelectedRow.Render("> " + row)
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}
	summary := ui.Muted.Render(fmt.Sprintf("%d/%d complete", done, len(m.tasks)))

	return ui.Panel.Render(ui.H2.Render(title) + "\n" + strings.Join(rows, "\n") + "\n" + summary)
}
