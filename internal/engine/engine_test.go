package engine

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/catalog"
	"github.com/soufianesaid-dot/Gymtrackerr/internal/storage"
)

var fixedNow = time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	svc, err := NewService(ctx, storage.NewSQLiteKV(db), opts...)
	require.NoError(t, err)
	return svc
}

func newMemService(t *testing.T, kv *storage.MemoryKV) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), kv, WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	return svc
}

func mustExercise(t *testing.T, id string) catalog.Exercise {
	t.Helper()
	ex, ok := catalog.Find(id)
	require.True(t, ok, "exercise %s", id)
	return ex
}

func startExercise(t *testing.T, sess *Session, id string) TipRequest {
	t.Helper()
	ex := mustExercise(t, id)
	require.NoError(t, sess.ChooseBodyPart(ex.BodyPart))
	req, err := sess.ChooseExercise(ex)
	require.NoError(t, err)
	return req
}

func TestSaveKeepsOnlyMeaningfulSets(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	sess := NewSession()
	startExercise(t, sess, "chest_1")

	sess.UpdateSet(0, FieldWeight, "60")
	sess.UpdateSet(0, FieldReps, "8")
	sess.AddSet()
	sess.AddSet()
	sess.UpdateSet(2, FieldReps, "12")

	entry, err := svc.SaveWorkout(ctx, sess)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "chest_1", entry.ExerciseID)
	assert.Equal(t, []storage.SetLog{{Weight: 60, Reps: 8}, {Weight: 0, Reps: 12}}, entry.Sets)
	assert.True(t, entry.Date.Equal(fixedNow))
	assert.NotEmpty(t, entry.ID)

	assert.Equal(t, StageBodyPartChosen, sess.Stage())
	_, status := sess.Tip()
	assert.Equal(t, TipNone, status)
	assert.Empty(t, sess.Sets())

	logs := svc.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, entry.ID, logs[0].ID)
}

func TestSaveAllZeroIsNoop(t *testing.T) {
	kv := storage.NewMemoryKV()
	svc := newMemService(t, kv)
	sess := NewSession()
	startExercise(t, sess, "legs_2")
	sess.AddSet()

	entry, err := svc.SaveWorkout(context.Background(), sess)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Equal(t, StageExerciseInProgress, sess.Stage())
	assert.Len(t, sess.Sets(), 2)
	assert.Zero(t, svc.Store().Version())
	assert.Zero(t, kv.Writes)
}

func TestSaveRequiresExercise(t *testing.T) {
	svc := newMemService(t, storage.NewMemoryKV())
	_, err := svc.SaveWorkout(context.Background(), NewSession())
	assert.ErrorIs(t, err, ErrNoExercise)
}

func TestSaveWriteFailureKeepsState(t *testing.T) {
	kv := storage.NewMemoryKV()
	svc := newMemService(t, kv)
	kv.FailSet = errors.New("disk full")

	sess := NewSession()
	startExercise(t, sess, "abs_1")
	sess.UpdateSet(0, FieldReps, "30")

	_, err := svc.SaveWorkout(context.Background(), sess)
	require.Error(t, err)
	assert.Equal(t, StageExerciseInProgress, sess.Stage())
	assert.Zero(t, svc.Store().Len())
}

func TestNewEntriesArePrepended(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.LogWorkout(ctx, "chest_1", []storage.SetLog{{Weight: 50, Reps: 10}})
	require.NoError(t, err)
	second, err := svc.LogWorkout(ctx, "back_1", []storage.SetLog{{Weight: 120, Reps: 5}})
	require.NoError(t, err)

	logs := svc.Logs()
	require.Len(t, logs, 2)
	assert.Equal(t, second.ID, logs[0].ID)
	assert.Equal(t, first.ID, logs[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestLogWorkoutUnknownExercise(t *testing.T) {
	svc := newMemService(t, storage.NewMemoryKV())
	_, err := svc.LogWorkout(context.Background(), "calves_9", []storage.SetLog{{Reps: 1}})
	assert.ErrorIs(t, err, ErrUnknownExercise)
}

func TestStorePersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	svc := newMemService(t, kv)
	_, err := svc.LogWorkout(ctx, "arms_1", []storage.SetLog{{Weight: 15, Reps: 12}})
	require.NoError(t, err)

	reloaded := newMemService(t, kv)
	if diff := cmp.Diff(svc.Logs(), reloaded.Logs()); diff != "" {
		t.Fatalf("reloaded logs mismatch (-want +got):\n%s", diff)
	}
}

func seedLogs(t *testing.T, svc *Service, logs []storage.ExerciseLog) {
	t.Helper()
	require.NoError(t, svc.Store().Replace(context.Background(), logs))
}

func TestGroupByDaySameDayNewestFirst(t *testing.T) {
	logs := []storage.ExerciseLog{
		{ID: "b", ExerciseID: "chest_1", Date: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)},
		{ID: "a", ExerciseID: "chest_1", Date: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}
	groups := GroupByDay(logs, time.UTC)
	require.Len(t, groups, 1)
	assert.Equal(t, "Wednesday, May 1", groups[0].Label)
	require.Len(t, groups[0].Logs, 2)
	assert.Equal(t, "b", groups[0].Logs[0].ID)
	assert.Equal(t, "a", groups[0].Logs[1].ID)
}

func TestGroupByDayKeepsEncounterOrder(t *testing.T) {
	logs := []storage.ExerciseLog{
		{ID: "3", Date: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "2", Date: time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)},
		{ID: "1", Date: time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC)},
	}
	groups := GroupByDay(logs, time.UTC)
	require.Len(t, groups, 2)
	// Encounter order, not label order: "Tuesday" would sort first.
	assert.Equal(t, "Wednesday, May 1", groups[0].Label)
	assert.Equal(t, []string{"3", "1"}, []string{groups[0].Logs[0].ID, groups[0].Logs[1].ID})
	assert.Equal(t, "Tuesday, Apr 2", groups[1].Label)
}

func TestGroupByDayUsesViewerCalendar(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	logs := []storage.ExerciseLog{
		{ID: "late", Date: time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)},
		{ID: "early", Date: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
	}
	assert.Len(t, GroupByDay(logs, time.UTC), 1)

	groups := GroupByDay(logs, tokyo)
	require.Len(t, groups, 2)
	assert.Equal(t, "Thursday, May 2", groups[0].Label)
	assert.Equal(t, "Wednesday, May 1", groups[1].Label)
}

func TestRecentDaysWindow(t *testing.T) {
	logs := []storage.ExerciseLog{
		{ID: "today", Date: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
		{ID: "month", Date: time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)},
	}
	groups := GroupByDay(logs, time.UTC)
	now := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)

	assert.Len(t, RecentDays(groups, now, 0), 2)

	today := RecentDays(groups, now, 1)
	require.Len(t, today, 1)
	assert.Equal(t, "today", today[0].Logs[0].ID)

	// Apr 2 is the 30th day counting back from May 1.
	assert.Len(t, RecentDays(groups, now, 30), 2)
	assert.Len(t, RecentDays(groups, now, 29), 1)
}

func TestPreviousAttemptReturnsMostRecent(t *testing.T) {
	svc := newMemService(t, storage.NewMemoryKV())
	seedLogs(t, svc, []storage.ExerciseLog{
		{ID: "newest", ExerciseID: "chest_1", Sets: []storage.SetLog{{Weight: 70, Reps: 5}}},
		{ID: "other", ExerciseID: "back_2"},
		{ID: "oldest", ExerciseID: "chest_1", Sets: []storage.SetLog{{Weight: 60, Reps: 5}}},
	})

	sess := NewSession()
	startExercise(t, sess, "chest_1")
	ex, _ := sess.Exercise()

	prev := svc.PreviousAttempt(ex.ID)
	require.NotNil(t, prev)
	assert.Equal(t, "newest", prev.ID)

	assert.Nil(t, svc.PreviousAttempt("abs_2"))
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	seedLogs(t, svc, []storage.ExerciseLog{
		{ID: "2", ExerciseID: "legs_1", Date: time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC), Sets: []storage.SetLog{{Weight: 100, Reps: 5}}},
		{ID: "1", ExerciseID: "abs_1", Date: time.Date(2024, 4, 30, 7, 30, 0, 0, time.UTC), Sets: []storage.SetLog{{Weight: 0, Reps: 60}}},
	})
	before := svc.Logs()

	var first bytes.Buffer
	require.NoError(t, svc.Export(&first))
	n, err := svc.Import(ctx, bytes.NewReader(first.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	if diff := cmp.Diff(before, svc.Logs()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	var second bytes.Buffer
	require.NoError(t, svc.Export(&second))
	assert.Equal(t, first.String(), second.String())
	assert.True(t, strings.HasPrefix(first.String(), "[\n  {\n    \"id\": \"2\","))
}

func TestExportEmptyStore(t *testing.T) {
	svc := newMemService(t, storage.NewMemoryKV())
	var buf bytes.Buffer
	require.NoError(t, svc.Export(&buf))
	assert.Equal(t, "[]\n", buf.String())
}

func TestImportRejectsNonArray(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	svc := newMemService(t, kv)
	seedLogs(t, svc, []storage.ExerciseLog{{ID: "keep", ExerciseID: "chest_1"}})
	writes := kv.Writes
	version := svc.Store().Version()

	for _, doc := range []string{`{"a":1}`, `not json`, ``, `null`, `[1, 2]`, `[{"id": 5}]`} {
		_, err := svc.Import(ctx, strings.NewReader(doc))
		var ie *ImportError
		require.ErrorAs(t, err, &ie, "doc %q", doc)
	}

	logs := svc.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, "keep", logs[0].ID)
	assert.Equal(t, writes, kv.Writes)
	assert.Equal(t, version, svc.Store().Version())
}

func TestImportReplacesWholesale(t *testing.T) {
	ctx := context.Background()
	svc := newMemService(t, storage.NewMemoryKV())
	seedLogs(t, svc, []storage.ExerciseLog{{ID: "old", ExerciseID: "chest_1"}})

	n, err := svc.Import(ctx, strings.NewReader(`[]`))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, svc.Logs())
}

func TestExportToDirAndImportFile(t *testing.T) {
	ctx := context.Background()
	svc := newMemService(t, storage.NewMemoryKV())
	_, err := svc.LogWorkout(ctx, "shoulders_1", []storage.SetLog{{Weight: 40, Reps: 8}})
	require.NoError(t, err)

	path, err := svc.ExportToDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "aura_strength_backup_2024-05-01.json", filepath.Base(path))

	other := newMemService(t, storage.NewMemoryKV())
	n, err := other.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	if diff := cmp.Diff(svc.Logs(), other.Logs()); diff != "" {
		t.Fatalf("imported logs mismatch (-want +got):\n%s", diff)
	}
}

func TestExportFilenameUsesUTCDate(t *testing.T) {
	late := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("X", -3*60*60))
	assert.Equal(t, "aura_strength_backup_2024-05-02.json", ExportFilename(late))
}

func TestSummaries(t *testing.T) {
	assert.Equal(t, "62.5kg × 8", SetSummary(storage.SetLog{Weight: 62.5, Reps: 8}))
	assert.Equal(t, "0kg × 12", SetSummary(storage.SetLog{Reps: 12}))
	assert.Equal(t, 900.0, TotalVolume(storage.ExerciseLog{Sets: []storage.SetLog{{Weight: 100, Reps: 5}, {Weight: 80, Reps: 5}}}))
}
