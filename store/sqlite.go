package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hanco1/D2Cdashboard/form"
	"github.com/hanco1/D2Cdashboard/log"
	"github.com/hanco1/D2Cdashboard/model"
)

// SQLite persists submissions in the service database.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db}
}

const submissionColumns = `
	id, respondent_name, respondent_role, headline, focus_area,
	priority, status, responses, created_at`

func (s *SQLite) List(ctx context.Context) ([]model.Submission, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+submissionColumns+`
		FROM submission
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []model.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, sub)
	}
	return submissions, rows.Err()
}

func (s *SQLite) GetByID(ctx context.Context, id string) (model.Submission, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+submissionColumns+`
		FROM submission
		WHERE id = ?`,
		id,
	)

	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Submission{}, ErrNotFound
	}
	return sub, err
}

func (s *SQLite) Insert(ctx context.Context, data CreateData) (string, error) {
	responses, err := json.Marshal(data.Responses)
	if err != nil {
		return "", err
	}

	// Anonymous submissions store NULL so the name column stays clean for
	// reporting queries.
	var name sql.NullString
	if data.RespondentName != form.AnonymousName {
		name = sql.NullString{String: data.RespondentName, Valid: true}
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO submission
			(id, respondent_name, respondent_role, headline, focus_area, priority, status, responses, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		name,
		data.RespondentRole,
		data.Headline,
		data.FocusArea,
		string(data.Priority),
		string(model.StatusNew),
		string(responses),
		time.Now().UTC(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *SQLite) UpdateStatus(ctx context.Context, id string, status model.Status) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE submission
		SET status = ?
		WHERE id = ?`,
		string(status),
		id,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM submission`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (model.Submission, error) {
	var (
		sub       model.Submission
		name      sql.NullString
		role      sql.NullString
		focusArea sql.NullString
		responses string
	)

	err := row.Scan(
		&sub.ID, &name, &role, &sub.Headline, &focusArea,
		&sub.Priority, &sub.Status, &responses, &sub.CreatedAt,
	)
	if err != nil {
		return model.Submission{}, err
	}

	sub.RespondentName = orDefault(name, form.AnonymousName)
	sub.RespondentRole = orDefault(role, form.UnspecifiedRole)
	sub.FocusArea = orDefault(focusArea, form.NoFocusArea)

	// A record whose stored answers no longer parse still lists; reviewers
	// just see it without the answer detail.
	if err := json.Unmarshal([]byte(responses), &sub.Responses); err != nil {
		log.Warnf("db.get_submission.parse_responses: %s (%s)", err, sub.ID)
		sub.Responses = model.StoredResponses{Answers: map[string]model.StoredAnswer{}}
	}
	if sub.Responses.Answers == nil {
		sub.Responses.Answers = map[string]model.StoredAnswer{}
	}
	return sub, nil
}

func orDefault(s sql.NullString, fallback string) string {
	if s.Valid && s.String != "" {
		return s.String
	}
	return fallback
}
