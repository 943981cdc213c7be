package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// LogsKey is the slot holding the whole workout log.
const LogsKey = "aura_strength_logs"

// LogRepo reads and rewrites the workout log document held in one KV slot.
type LogRepo struct {
	kv  KV
	key string
}

func NewLogRepo(kv KV) *LogRepo {
	return &LogRepo{kv: kv, key: LogsKey}
}

// Load returns the stored logs in stored order. A missing slot is an empty log.
func (r *LogRepo) Load(ctx context.Context) ([]ExerciseLog, error) {
	raw, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []ExerciseLog{}, nil
	}
	var logs []ExerciseLog
	if err := json.Unmarshal([]byte(raw), &logs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.key, err)
	}
	if logs == nil {
		logs = []ExerciseLog{}
	}
	return logs, nil
}

// Save overwrites the slot with the full list.
func (r *LogRepo) Save(ctx context.Context, logs []ExerciseLog) error {
	if logs == nil {
		logs = []ExerciseLog{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	return r.kv.Set(ctx, r.key, string(data))
}
