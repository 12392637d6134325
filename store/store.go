package store

import (
	"context"
	"errors"

	"github.com/hanco1/D2Cdashboard/model"
)

// ErrNotFound is returned when a submission id does not exist.
var ErrNotFound = errors.New("submission not found")

// CreateData carries the derived fields and frozen response package for a
// new submission. Everything else (id, status, creation time) is owned by
// the repository.
type CreateData struct {
	RespondentName string
	RespondentRole string
	Headline       string
	FocusArea      string
	Priority       model.Priority
	Responses      model.StoredResponses
}

// Repository is the persistence boundary for submissions. Insert is
// all-or-nothing: either a full record is persisted and its id returned, or
// nothing is written.
type Repository interface {
	List(ctx context.Context) ([]model.Submission, error)
	GetByID(ctx context.Context, id string) (model.Submission, error)
	Insert(ctx context.Context, data CreateData) (string, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) error
	DeleteAll(ctx context.Context) (int64, error)
}
