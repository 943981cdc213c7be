package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/engine"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
)

type cannedTips struct{ text string }

func (c cannedTips) Tip(context.Context, string) string { return c.text }

func newTestModel(t *testing.T) appModel {
	t.Helper()
	svc, err := engine.NewService(context.Background(), storage.NewMemoryKV(),
		engine.WithTipProvider(cannedTips{text: "Squeeze at the top."}),
		engine.WithClock(func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }),
	)
	require.NoError(t, err)
	return newAppModel(context.Background(), svc, Options{BackupDir: t.TempDir(), Location: time.UTC})
}

func press(t *testing.T, m appModel, keys ...tea.KeyMsg) appModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(appModel)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	ctrlN = tea.KeyMsg{Type: tea.KeyCtrlN}
	ctrlD = tea.KeyMsg{Type: tea.KeyCtrlD}
)

func typeText(t *testing.T, m appModel, s string) appModel {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runes(string(r)))
	}
	return m
}

// openExercise drills into the first exercise of the first body part and
// resolves its tip.
func openExercise(t *testing.T, m appModel) appModel {
	t.Helper()
	m = press(t, m, enter)
	next, cmd := m.Update(enter)
	m = next.(appModel)
	require.Equal(t, engine.StageExerciseInProgress, m.sess.Stage())
	require.NotNil(t, cmd)
	return m
}

func TestLogFlowSavesWorkout(t *testing.T) {
	m := newTestModel(t)
	m = openExercise(t, m)
	assert.Contains(t, m.View(), engine.LoadingTip)

	m = typeText(t, m, "60")
	m = press(t, m, tab)
	m = typeText(t, m, "8")
	m = press(t, m, ctrlN)
	m = typeText(t, m, "65")
	m = press(t, m, tab)
	m = typeText(t, m, "6")
	assert.Len(t, m.sess.Sets(), 2)

	m = press(t, m, ctrlS)
	assert.Equal(t, engine.StageBodyPartChosen, m.sess.Stage())
	assert.Contains(t, m.banner, "Saved Barbell Bench Press (2 sets)")

	logs := m.svc.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, []storage.SetLog{{Weight: 60, Reps: 8}, {Weight: 65, Reps: 6}}, logs[0].Sets)
}

func TestSaveWithOnlyEmptySetsDoesNothing(t *testing.T) {
	m := openExercise(t, newTestModel(t))
	m = press(t, m, ctrlS)
	assert.Equal(t, engine.StageExerciseInProgress, m.sess.Stage())
	assert.Empty(t, m.svc.Logs())
	assert.Contains(t, m.banner, "Nothing to save")
}

func TestRemoveLastSetIsRefused(t *testing.T) {
	m := openExercise(t, newTestModel(t))
	m = press(t, m, ctrlD)
	assert.Len(t, m.rows, 1)
	assert.Len(t, m.sess.Sets(), 1)

	m = press(t, m, ctrlN, ctrlD)
	assert.Len(t, m.rows, 1)
	assert.Len(t, m.sess.Sets(), 1)
}

func TestTipMessageAppliedOnlyForCurrentSelection(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, enter)
	next, cmd := m.Update(enter)
	m = next.(appModel)
	require.NotNil(t, cmd)

	// Resolve the fetch by hand so the ordering is deterministic.
	req := engine.TipRequest{ExerciseID: "chest_1", ExerciseName: "Barbell Bench Press", Generation: 1}
	stale := tipMsg{req: req, text: "old news"}

	m = press(t, m, esc)
	next, _ = m.Update(stale)
	m = next.(appModel)
	_, status := m.sess.Tip()
	assert.Equal(t, engine.TipNone, status)

	m = press(t, m, enter)
	tipText, _ := m.sess.Tip()
	assert.Equal(t, engine.LoadingTip, tipText)
	next, _ = m.Update(stale)
	m = next.(appModel)
	tipText, _ = m.sess.Tip()
	assert.Equal(t, engine.LoadingTip, tipText)

	req.Generation = 3
	next, _ = m.Update(tipMsg{req: req, text: "Squeeze at the top."})
	m = next.(appModel)
	assert.Contains(t, m.View(), "Squeeze at the top.")
}

func TestBackStepsOneLevel(t *testing.T) {
	m := openExercise(t, newTestModel(t))
	m = press(t, m, esc)
	assert.Equal(t, engine.StageBodyPartChosen, m.sess.Stage())
	assert.Contains(t, m.View(), "Chest Training")
	m = press(t, m, esc)
	assert.Equal(t, engine.StageIdle, m.sess.Stage())
	assert.Contains(t, m.View(), "Focus on your progress.")
}

func TestDigitsGoToInputsDuringSetEntry(t *testing.T) {
	m := openExercise(t, newTestModel(t))
	m = typeText(t, m, "2")
	assert.Equal(t, viewLog, m.view)
	assert.Equal(t, 2.0, m.sess.Sets()[0].Weight)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, viewHistory, m.view)
}

func TestHistoryViewGroupsAndMemoizes(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("2"))
	assert.Contains(t, m.View(), "No records yet. Start training!")

	_, err := m.svc.LogWorkout(context.Background(), "legs_1", []storage.SetLog{{Weight: 100, Reps: 5}})
	require.NoError(t, err)

	view := m.View()
	assert.Contains(t, view, "WEDNESDAY, MAY 1")
	assert.Contains(t, view, "Back Squats")
	assert.Contains(t, view, "100kg × 5")
	assert.Equal(t, m.svc.Store().Version(), m.history.version)
}

func TestSettingsExportAndImport(t *testing.T) {
	m := newTestModel(t)
	_, err := m.svc.LogWorkout(context.Background(), "abs_1", []storage.SetLog{{Reps: 60}})
	require.NoError(t, err)

	m = press(t, m, runes("3"), enter)
	assert.Contains(t, m.banner, "aura_strength_backup_2024-05-01.json")
	path := filepath.Join(m.opts.BackupDir, "aura_strength_backup_2024-05-01.json")
	_, err = os.Stat(path)
	require.NoError(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"a":1}`), 0o644))

	m = press(t, m, down, enter)
	require.True(t, m.importing)
	m = typeText(t, m, bad)
	m = press(t, m, enter)
	assert.True(t, m.bannerBad)
	assert.Equal(t, "Invalid backup file.", m.banner)
	assert.Len(t, m.svc.Logs(), 1)

	require.NoError(t, os.WriteFile(bad, []byte(`[]`), 0o644))
	m = press(t, m, enter)
	m = typeText(t, m, bad)
	m = press(t, m, enter)
	assert.False(t, m.bannerBad)
	assert.True(t, strings.HasPrefix(m.banner, "Data imported successfully!"))
	assert.Empty(t, m.svc.Logs())
}
