package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

var (
	ErrWordNotFound = errors.New("word not found")
	ErrWordExists   = errors.New("word already exists")
)

// WordRepository stores the whole vocabulary in a single pretty-printed
// JSON array file. Every read loads the file wholesale and every mutation
// rewrites it wholesale. A mutex spans each read-modify-write so that
// concurrent requests stay all-or-nothing against the file.
type WordRepository struct {
	mu   sync.Mutex
	path string
}

// NewWordRepository creates a repository backed by the file at path. The
// file does not have to exist yet; it is created on the first mutation.
func NewWordRepository(path string) *WordRepository {
	return &WordRepository{path: path}
}

// List returns all stored words.
func (r *WordRepository) List(_ context.Context) ([]entities.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// Insert assigns the next free ID and appends the word. It returns
// ErrWordExists if the word value matches an existing entry
// case-insensitively.
func (r *WordRepository) Insert(_ context.Context, w entities.Word) (entities.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return entities.Word{}, err
	}

	for _, existing := range words {
		if existing.SameWord(w.Word) {
			return entities.Word{}, ErrWordExists
		}
	}

	w.ID = nextID(words)
	words = append(words, w)

	if err := r.save(words); err != nil {
		return entities.Word{}, err
	}

	return w, nil
}

// Update replaces the stored word with the same ID. It returns
// ErrWordNotFound for an unknown ID and ErrWordExists when the new word
// value collides with a different entry.
func (r *WordRepository) Update(_ context.Context, w entities.Word) (entities.Word, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return entities.Word{}, err
	}

	// An unknown id is a not-found, even when the new word value would
	// also collide with some other record.
	idx := -1
	for i, existing := range words {
		if existing.ID == w.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entities.Word{}, ErrWordNotFound
	}

	for i, existing := range words {
		if i != idx && existing.SameWord(w.Word) {
			return entities.Word{}, ErrWordExists
		}
	}

	words[idx] = w

	if err := r.save(words); err != nil {
		return entities.Word{}, err
	}

	return w, nil
}

// Delete removes the word with the given ID.
func (r *WordRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return err
	}

	for i, existing := range words {
		if existing.ID == id {
			words = append(words[:i], words[i+1:]...)
			return r.save(words)
		}
	}

	return ErrWordNotFound
}

// ReplaceTopic rewrites the topic of every word labelled oldName to
// newName and returns how many words were touched.
func (r *WordRepository) ReplaceTopic(_ context.Context, oldName, newName string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return 0, err
	}

	changed := 0
	for i := range words {
		if words[i].Topic == oldName {
			words[i].Topic = newName
			changed++
		}
	}

	if changed == 0 {
		return 0, nil
	}

	return changed, r.save(words)
}

// DeleteByTopic removes every word labelled with the topic and returns
// how many words were removed.
func (r *WordRepository) DeleteByTopic(_ context.Context, name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	words, err := r.load()
	if err != nil {
		return 0, err
	}

	kept := words[:0]
	for _, w := range words {
		if w.Topic != name {
			kept = append(kept, w)
		}
	}

	deleted := len(words) - len(kept)
	if deleted == 0 {
		return 0, nil
	}

	return deleted, r.save(kept)
}

// load reads the whole store file. A missing file is an empty collection
// (nothing has been saved yet); a file that fails to parse is an error so
// that a corrupt store never masquerades as an empty one.
func (r *WordRepository) load() ([]entities.Word, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var words []entities.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", r.path, err)
	}

	return words, nil
}

// save rewrites the whole store file, creating the containing directory
// when needed. The write goes through a temp file and a rename so a crash
// mid-write cannot leave a half-written store behind.
func (r *WordRepository) save(words []entities.Word) error {
	if words == nil {
		words = []entities.Word{}
	}

	data, err := json.MarshalIndent(words, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".vocabulary-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close store file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace store file: %w", err)
	}

	return nil
}

func nextID(words []entities.Word) int {
	maxID := 0
	for _, w := range words {
		if w.ID > maxID {
			maxID = w.ID
		}
	}
	return maxID + 1
}
