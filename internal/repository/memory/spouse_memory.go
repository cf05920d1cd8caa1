// Package memory provides an in-process repository.SpouseRepository.
// Records live only as long as the process.
package memory

import (
	"context"
	"sync"

	"spouseshowcase/internal/model"
	"spouseshowcase/internal/repository"
	"spouseshowcase/internal/schema"
)

// SpouseMemory keeps records in insertion order and hands out ids the way a
// SERIAL column does: starting at 1, never reused.
type SpouseMemory struct {
	mu     sync.RWMutex
	items  []model.Spouse
	lastID int64
}

// NewSpouseMemory creates an empty store.
func NewSpouseMemory() *SpouseMemory {
	return &SpouseMemory{}
}

var _ repository.SpouseRepository = (*SpouseMemory)(nil)

func (m *SpouseMemory) List(ctx context.Context) ([]model.Spouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.ListError(err)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Spouse, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *SpouseMemory) Create(ctx context.Context, in schema.SpouseInput) (*model.Spouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, repository.CreateError(err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	s := model.Spouse{
		ID:         m.lastID,
		UserName:   in.UserName,
		SpouseName: in.SpouseName,
		ImageData:  in.ImageData,
	}
	m.items = append(m.items, s)
	return &s, nil
}
