package store

import (
	"context"
	"sync"
)

// NoteRepository stores free-form notes keyed by question ID.
type NoteRepository struct {
	kv KV
	mu sync.Mutex
}

func NewNoteRepository(kv KV) *NoteRepository {
	return &NoteRepository{kv: kv}
}

func (r *NoteRepository) All(ctx context.Context, profile string) (map[string]string, error) {
	notes := make(map[string]string)
	if err := loadJSON(ctx, r.kv, profile, KeySavedNotes, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Find returns the note for a question, or "" if there is none.
func (r *NoteRepository) Find(ctx context.Context, profile, questionID string) (string, error) {
	notes, err := r.All(ctx, profile)
	if err != nil {
		return "", err
	}
	return notes[questionID], nil
}

func (r *NoteRepository) Save(ctx context.Context, profile, questionID, note string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.All(ctx, profile)
	if err != nil {
		return err
	}
	notes[questionID] = note
	return saveJSON(ctx, r.kv, profile, KeySavedNotes, notes)
}

// Delete is a no-op when the question has no note.
func (r *NoteRepository) Delete(ctx context.Context, profile, questionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes, err := r.All(ctx, profile)
	if err != nil {
		return err
	}
	if _, ok := notes[questionID]; !ok {
		return nil
	}
	delete(notes, questionID)
	return saveJSON(ctx, r.kv, profile, KeySavedNotes, notes)
}
