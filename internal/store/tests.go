package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/uvquiz/backend/internal/domain/quiz"
)

// TestRepository persists the test collection and the current-test pointer.
// The collection is read and written as one value.
type TestRepository struct {
	kv KV
	mu sync.Mutex // serializes read-modify-write of the collection
}

func NewTestRepository(kv KV) *TestRepository {
	return &TestRepository{kv: kv}
}

// LoadAll returns every saved test keyed by ID.
func (r *TestRepository) LoadAll(ctx context.Context, profile string) (map[string]*quiz.Test, error) {
	tests := make(map[string]*quiz.Test)
	if err := loadJSON(ctx, r.kv, profile, KeySavedTests, &tests); err != nil {
		return nil, err
	}
	for _, t := range tests {
		if t.UserAnswers == nil {
			t.UserAnswers = make(map[int]int)
		}
	}
	return tests, nil
}

// List returns saved tests, newest first.
func (r *TestRepository) List(ctx context.Context, profile string) ([]*quiz.Test, error) {
	all, err := r.LoadAll(ctx, profile)
	if err != nil {
		return nil, err
	}
	list := make([]*quiz.Test, 0, len(all))
	for _, t := range all {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *TestRepository) Get(ctx context.Context, profile, id string) (*quiz.Test, error) {
	all, err := r.LoadAll(ctx, profile)
	if err != nil {
		return nil, err
	}
	t, ok := all[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

// Save inserts or overwrites a test in the collection.
func (r *TestRepository) Save(ctx context.Context, profile string, t *quiz.Test) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.LoadAll(ctx, profile)
	if err != nil {
		return err
	}
	all[t.ID] = t
	return saveJSON(ctx, r.kv, profile, KeySavedTests, all)
}

// Delete removes a test. If it was the current test the pointer is cleared.
func (r *TestRepository) Delete(ctx context.Context, profile, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.LoadAll(ctx, profile)
	if err != nil {
		return err
	}
	if _, ok := all[id]; !ok {
		return ErrNotFound
	}
	delete(all, id)
	if err := saveJSON(ctx, r.kv, profile, KeySavedTests, all); err != nil {
		return err
	}

	current, err := r.CurrentID(ctx, profile)
	if err == nil && current == id {
		return r.kv.Delete(ctx, profile, KeyCurrentTestID)
	}
	return nil
}

func (r *TestRepository) SetCurrent(ctx context.Context, profile, id string) error {
	return r.kv.Put(ctx, profile, KeyCurrentTestID, []byte(id))
}

// CurrentID returns ErrNoCurrentTest when no pointer is set.
func (r *TestRepository) CurrentID(ctx context.Context, profile string) (string, error) {
	raw, err := r.kv.Get(ctx, profile, KeyCurrentTestID)
	if errors.Is(err, ErrNotFound) || (err == nil && len(raw) == 0) {
		return "", ErrNoCurrentTest
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Current resolves the pointer. A pointer to a test that no longer exists
// is reported as ErrNotFound rather than silently cleared.
func (r *TestRepository) Current(ctx context.Context, profile string) (*quiz.Test, error) {
	id, err := r.CurrentID(ctx, profile)
	if err != nil {
		return nil, err
	}
	t, err := r.Get(ctx, profile, id)
	if err != nil {
		return nil, fmt.Errorf("current test %s: %w", id, err)
	}
	return t, nil
}
