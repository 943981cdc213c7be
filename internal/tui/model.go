package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/engine"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/ui"
)

type view int

const (
	viewLog view = iota
	viewHistory
	viewSettings
)

var viewNames = []string{"Log", "History", "Settings"}

const aboutMarkdown = `### About Aura

Aura Strength is built for lifters who want focus, not features.
No subscriptions, no ads, just progress.

Your data is stored locally. Export it regularly to keep a safe backup.`

type settingsItem int

const (
	itemExport settingsItem = iota
	itemImport
)

var settingsLabels = []string{"Export Backup (.json)", "Restore from File"}

// setRow holds the raw text of one set's inputs; the session keeps the
// coerced numbers.
type setRow struct {
	weight textinput.Model
	reps   textinput.Model
}

type historyCache struct {
	version uint64
	valid   bool
	groups  []engine.DayGroup
}

type appModel struct {
	ctx  context.Context
	svc  *engine.Service
	opts Options

	width  int
	height int

	view view
	sess *engine.Session

	cursor int // body part grid / exercise list
	rows   []setRow
	focus  int // row*2 + field

	settingsCursor int
	importing      bool
	importInput    textinput.Model

	history       *historyCache
	historyScroll int
	about         string

	banner    string
	bannerBad bool
}

type tipMsg struct {
	req  engine.TipRequest
	text string
}

func newAppModel(ctx context.Context, svc *engine.Service, opts Options) appModel {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	ti := textinput.New()
	ti.Placeholder = "path/to/aura_strength_backup.json"
	ti.CharLimit = 512
	ti.Width = 48

	return appModel{
		ctx:         ctx,
		svc:         svc,
		opts:        opts,
		sess:        engine.NewSession(),
		importInput: ti,
		history:     &historyCache{},
		about:       renderAbout(),
	}
}

func renderAbout() string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(60),
	)
	if err != nil {
		return aboutMarkdown
	}
	out, err := r.Render(aboutMarkdown)
	if err != nil {
		return aboutMarkdown
	}
	return strings.TrimRight(out, "\n")
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) tipCmd(req engine.TipRequest) tea.Cmd {
	return func() tea.Msg {
		return tipMsg{req: req, text: m.svc.FetchTip(m.ctx, req)}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tipMsg:
		// Dropped when the user moved on before the fetch resolved.
		m.sess.ApplyTip(msg.req, msg.text)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m appModel) textEntry() bool {
	return (m.view == viewLog && m.sess.Stage() == engine.StageExerciseInProgress) ||
		(m.view == viewSettings && m.importing)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "f1":
		return m.switchView(viewLog), nil
	case "f2":
		return m.switchView(viewHistory), nil
	case "f3":
		return m.switchView(viewSettings), nil
	}

	if !m.textEntry() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "1":
			return m.switchView(viewLog), nil
		case "2":
			return m.switchView(viewHistory), nil
		case "3":
			return m.switchView(viewSettings), nil
		}
	}

	switch m.view {
	case viewHistory:
		return m.updateHistory(msg)
	case viewSettings:
		return m.updateSettings(msg)
	default:
		return m.updateLog(msg)
	}
}

func (m appModel) switchView(v view) appModel {
	m.view = v
	m.banner = ""
	if v != viewSettings {
		m.importing = false
		m.importInput.Blur()
	}
	return m
}

func (m *appModel) say(msg string, bad bool) {
	m.banner = msg
	m.bannerBad = bad
}

// --- Log view ---

func (m appModel) updateLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.sess.Stage() {
	case engine.StageIdle:
		parts := catalog.BodyParts()
		switch msg.String() {
		case "up", "k":
			m.cursor = clamp(m.cursor-1, len(parts))
		case "down", "j":
			m.cursor = clamp(m.cursor+1, len(parts))
		case "enter", " ":
			if err := m.sess.ChooseBodyPart(parts[clamp(m.cursor, len(parts))]); err != nil {
				m.say(err.Error(), true)
				return m, nil
			}
			m.cursor = 0
			m.banner = ""
		}
		return m, nil

	case engine.StageBodyPartChosen:
		bp, _ := m.sess.BodyPart()
		list := catalog.ForBodyPart(bp)
		switch msg.String() {
		case "esc", "backspace":
			m.sess.Back()
			m.cursor = 0
		case "up", "k":
			m.cursor = clamp(m.cursor-1, len(list))
		case "down", "j":
			m.cursor = clamp(m.cursor+1, len(list))
		case "enter", " ":
			req, err := m.sess.ChooseExercise(list[clamp(m.cursor, len(list))])
			if err != nil {
				m.say(err.Error(), true)
				return m, nil
			}
			m.banner = ""
			m.rows = []setRow{newSetRow()}
			m.focus = 0
			focusCmd := m.focusInput()
			return m, tea.Batch(focusCmd, m.tipCmd(req))
		}
		return m, nil

	default:
		return m.updateSetEntry(msg)
	}
}

func newSetRow() setRow {
	w := textinput.New()
	w.Placeholder = "Weight"
	w.CharLimit = 8
	w.Width = 8
	r := textinput.New()
	r.Placeholder = "Reps"
	r.CharLimit = 5
	r.Width = 6
	return setRow{weight: w, reps: r}
}

func (m *appModel) focusInput() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.rows {
		m.rows[i].weight.Blur()
		m.rows[i].reps.Blur()
	}
	if len(m.rows) == 0 {
		return nil
	}
	m.focus = clamp(m.focus, len(m.rows)*2)
	row := &m.rows[m.focus/2]
	if m.focus%2 == 0 {
		cmd = row.weight.Focus()
	} else {
		cmd = row.reps.Focus()
	}
	return cmd
}

func (m appModel) updateSetEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.sess.Back()
		m.rows = nil
		m.focus = 0
		return m, nil
	case "tab", "down":
		m.focus = clamp(m.focus+1, len(m.rows)*2)
		cmd := m.focusInput()
		return m, cmd
	case "shift+tab", "up":
		m.focus = clamp(m.focus-1, len(m.rows)*2)
		cmd := m.focusInput()
		return m, cmd
	case "ctrl+n":
		if m.sess.AddSet() {
			m.rows = append(m.rows, newSetRow())
			m.focus = (len(m.rows) - 1) * 2
		}
		cmd := m.focusInput()
		return m, cmd
	case "ctrl+d":
		row := m.focus / 2
		if m.sess.RemoveSet(row) {
			m.rows = append(m.rows[:row:row], m.rows[row+1:]...)
		} else {
			m.say("At least one set stays on the list.", false)
		}
		cmd := m.focusInput()
		return m, cmd
	case "ctrl+s":
		return m.save()
	}

	if len(m.rows) == 0 {
		return m, nil
	}
	row := m.focus / 2
	var cmd tea.Cmd
	if m.focus%2 == 0 {
		m.rows[row].weight, cmd = m.rows[row].weight.Update(msg)
		m.sess.UpdateSet(row, engine.FieldWeight, m.rows[row].weight.Value())
	} else {
		m.rows[row].reps, cmd = m.rows[row].reps.Update(msg)
		m.sess.UpdateSet(row, engine.FieldReps, m.rows[row].reps.Value())
	}
	return m, cmd
}

func (m appModel) save() (tea.Model, tea.Cmd) {
	ex, _ := m.sess.Exercise()
	entry, err := m.svc.SaveWorkout(m.ctx, m.sess)
	switch {
	case err != nil:
		m.say("Save failed: "+err.Error(), true)
	case entry == nil:
		m.say("Nothing to save: enter a weight or reps first.", false)
	default:
		m.rows = nil
		m.focus = 0
		m.cursor = 0
		m.say(fmt.Sprintf("%s Saved %s (%d sets)", ui.IconDone, ex.Name, len(entry.Sets)), false)
	}
	return m, nil
}

// --- History view ---

func (m appModel) historyGroups() []engine.DayGroup {
	v := m.svc.Store().Version()
	if !m.history.valid || m.history.version != v {
		m.history.groups = m.svc.History(m.opts.Location)
		m.history.version = v
		m.history.valid = true
	}
	return m.history.groups
}

func (m appModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.historyScroll > 0 {
			m.historyScroll--
		}
	case "down", "j":
		m.historyScroll++
	}
	return m, nil
}

// --- Settings view ---

func (m appModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.importing {
		switch msg.String() {
		case "esc":
			m.importing = false
			m.importInput.Blur()
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.importInput.Value())
			m.importing = false
			m.importInput.Blur()
			m.importInput.SetValue("")
			if path == "" {
				return m, nil
			}
			n, err := m.svc.ImportFile(m.ctx, path)
			if err != nil {
				var ie *engine.ImportError
				if errors.As(err, &ie) {
					m.say("Invalid backup file.", true)
				} else {
					m.say(err.Error(), true)
				}
				return m, nil
			}
			m.say(fmt.Sprintf("Data imported successfully! (%d entries)", n), false)
			return m, nil
		}
		var cmd tea.Cmd
		m.importInput, cmd = m.importInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		m.settingsCursor = clamp(m.settingsCursor-1, len(settingsLabels))
	case "down", "j":
		m.settingsCursor = clamp(m.settingsCursor+1, len(settingsLabels))
	case "e":
		return m.export()
	case "i":
		m.importing = true
		cmd := m.importInput.Focus()
		return m, cmd
	case "enter", " ":
		if settingsItem(m.settingsCursor) == itemExport {
			return m.export()
		}
		m.importing = true
		cmd := m.importInput.Focus()
		return m, cmd
	}
	return m, nil
}

func (m appModel) export() (tea.Model, tea.Cmd) {
	path, err := m.svc.ExportToDir(m.opts.BackupDir)
	if err != nil {
		m.say("Export failed: "+err.Error(), true)
		return m, nil
	}
	m.say(ui.IconExport+" Backup written to "+path, false)
	return m, nil
}

// --- rendering ---

func (m appModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	switch m.view {
	case viewHistory:
		b.WriteString(m.renderHistory())
	case viewSettings:
		b.WriteString(m.renderSettings())
	default:
		b.WriteString(m.renderLog())
	}
	b.WriteString("\n")
	if m.banner != "" {
		style := ui.Good
		if m.bannerBad {
			style = ui.Bad
		}
		b.WriteString("\n" + style.Render(m.banner) + "\n")
	}
	b.WriteString("\n" + m.renderTabs() + "\n")
	b.WriteString(ui.Muted.Render(m.keyHelp()))
	return b.String()
}

func (m appModel) subtitle() string {
	switch m.view {
	case viewHistory:
		return "Your Training History"
	case viewSettings:
		return "Settings & Backup"
	}
	if ex, ok := m.sess.Exercise(); ok {
		return ex.Name
	}
	if bp, ok := m.sess.BodyPart(); ok {
		return string(bp) + " Training"
	}
	return "Focus on your progress."
}

func (m appModel) renderHeader() string {
	return ui.Heading(ui.IconDumbbell, "Aura Strength") + "\n" + ui.Muted.Render(m.subtitle())
}

func (m appModel) renderTabs() string {
	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if view(i) == m.view {
			tabs[i] = ui.TabActive.Render(label)
		} else {
			tabs[i] = ui.TabInactive.Render(label)
		}
	}
	return strings.Join(tabs, " ")
}

func (m appModel) keyHelp() string {
	if m.view == viewLog && m.sess.Stage() == engine.StageExerciseInProgress {
		return "tab/↑↓: field • ctrl+n: add set • ctrl+d: remove set • ctrl+s: save • esc: back • F1-F3: views"
	}
	if m.view == viewSettings && m.importing {
		return "enter: import • esc: cancel"
	}
	if m.view == viewLog && m.sess.Stage() == engine.StageBodyPartChosen {
		return "↑/↓: move • enter: select • esc: back • 1-3: views • q: quit"
	}
	return "↑/↓: move • enter: select • 1-3: views • q: quit"
}

func (m appModel) renderLog() string {
	switch m.sess.Stage() {
	case engine.StageIdle:
		var lines []string
		for i, bp := range catalog.BodyParts() {
			line := fmt.Sprintf("[%s] %s", ui.BodyPartBadge(bp), bp)
			lines = append(lines, cursorLine(line, i == m.cursor))
		}
		return strings.Join(lines, "\n")

	case engine.StageBodyPartChosen:
		bp, _ := m.sess.BodyPart()
		var lines []string
		for i, ex := range catalog.ForBodyPart(bp) {
			line := ex.Name + "  " + ui.Muted.Render("Log today's set")
			lines = append(lines, cursorLine(line, i == m.cursor))
		}
		return strings.Join(lines, "\n")
	}

	ex, _ := m.sess.Exercise()
	tipText, _ := m.sess.Tip()
	var out []string
	out = append(out, ui.TipPanel.Render(ui.IconSparkle+" "+ui.Tip.Render(tipText)))

	if prev := m.svc.PreviousAttempt(ex.ID); prev != nil {
		out = append(out, "", ui.H2.Render("LAST TIME"))
		var chips []string
		for _, s := range prev.Sets {
			chips = append(chips, ui.Chip.Render(engine.SetSummary(s)))
		}
		out = append(out, ui.Panel.Render(strings.Join(chips, " ")))
	}

	out = append(out, "", ui.H2.Render("NEW ENTRY"))
	for i, row := range m.rows {
		out = append(out, fmt.Sprintf("%2d  %s KG   %s RPS", i+1, row.weight.View(), row.reps.View()))
	}
	return strings.Join(out, "\n")
}

func (m appModel) renderHistory() string {
	groups := m.historyGroups()
	if len(groups) == 0 {
		return ui.Muted.Render("No records yet. Start training!")
	}
	var lines []string
	for _, g := range groups {
		lines = append(lines, ui.H2.Render(strings.ToUpper(g.Label)))
		for _, l := range g.Logs {
			lines = append(lines, renderHistoryEntry(l))
		}
		lines = append(lines, "")
	}
	start := m.historyScroll
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	return strings.Join(lines[start:], "\n")
}

func renderHistoryEntry(l storage.ExerciseLog) string {
	var chips []string
	for _, s := range l.Sets {
		chips = append(chips, engine.SetSummary(s))
	}
	head := fmt.Sprintf("%s  %s", ui.Key.Render(catalog.ExerciseName(l.ExerciseID)), ui.SetsBadge(len(l.Sets)))
	if v := engine.TotalVolume(l); v > 0 {
		head += ui.Muted.Render(fmt.Sprintf("  %.0fkg volume", v))
	}
	return "  " + head + "\n    " + strings.Join(chips, " · ")
}

func (m appModel) renderSettings() string {
	var out []string
	out = append(out, ui.H2.Render("Data Management"))
	out = append(out, ui.Muted.Render(fmt.Sprintf("%d entries stored locally.", m.svc.Store().Len())))
	out = append(out, "")
	for i, label := range settingsLabels {
		icon := ui.IconExport
		if settingsItem(i) == itemImport {
			icon = ui.IconImport
		}
		out = append(out, cursorLine(icon+" "+label, i == m.settingsCursor))
	}
	if m.importing {
		out = append(out, "", ui.LabelValue("Backup file", m.importInput.View()))
	}
	out = append(out, "", m.about)
	return strings.Join(out, "\n")
}

func cursorLine(s string, selected bool) string {
	if selected {
		return ui.SelectedRow.Render("> ") + s
	}
	return "  " + s
}

// clamp keeps i within [0, n).
func clamp(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
