package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hanco1/D2Cdashboard/model"
)

// Memory is an in-process Repository used for tests and for environments
// without configured storage. It satisfies the same contract as the SQLite
// implementation, including newest-first listing.
type Memory struct {
	mu          sync.Mutex
	submissions []model.Submission
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) List(ctx context.Context) ([]model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Submission, len(m.submissions))
	copy(out, m.submissions)
	return out, nil
}

func (m *Memory) GetByID(ctx context.Context, id string) (model.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.submissions {
		if m.submissions[i].ID == id {
			return m.submissions[i], nil
		}
	}
	return model.Submission{}, ErrNotFound
}

func (m *Memory) Insert(ctx context.Context, data CreateData) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := model.Submission{
		ID:             uuid.NewString(),
		RespondentName: data.RespondentName,
		RespondentRole: data.RespondentRole,
		Headline:       data.Headline,
		FocusArea:      data.FocusArea,
		Priority:       data.Priority,
		Status:         model.StatusNew,
		Responses:      data.Responses,
		CreatedAt:      time.Now().UTC(),
	}

	// Newest first, matching the SQLite ORDER BY.
	m.submissions = append([]model.Submission{sub}, m.submissions...)
	return sub.ID, nil
}

func (m *Memory) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.submissions {
		if m.submissions[i].ID == id {
			m.submissions[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) DeleteAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := int64(len(m.submissions))
	m.submissions = nil
	return n, nil
}
