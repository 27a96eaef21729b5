package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
)

// TapeService records completed calculations for the session.
type TapeService struct {
	Entries    *repository.TapeRepo
	MaxEntries int
}

// Record stores one evaluation and trims the tape to MaxEntries.
func (s *TapeService) Record(ctx context.Context, ev calc.Evaluation) (repository.TapeEntry, error) {
	e := repository.TapeEntry{
		ID:        uuid.NewString(),
		Left:      ev.Left,
		Operator:  ev.Operator.String(),
		Right:     ev.Right,
		Result:    ev.Result,
		Failed:    ev.Err != nil,
		CreatedAt: database.Now(),
	}
	if err := s.Entries.Append(ctx, e, s.MaxEntries); err != nil {
		return repository.TapeEntry{}, fmt.Errorf("record evaluation: %w", err)
	}
	return e, nil
}

// Recent returns up to n entries, newest first.
func (s *TapeService) Recent(ctx context.Context, n int) ([]repository.TapeEntry, error) {
	if n <= 0 {
		return nil, nil
	}
	entries, err := s.Entries.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("list tape: %w", err)
	}
	return entries, nil
}

// Clear empties the tape.
func (s *TapeService) Clear(ctx context.Context) error {
	if err := s.Entries.Clear(ctx); err != nil {
		return fmt.Errorf("clear tape: %w", err)
	}
	return nil
}

// Line formats an entry the way the tape pane shows it.
func Line(e repository.TapeEntry) string {
	return fmt.Sprintf("%s %s %s = %s", e.Left, e.Operator, e.Right, e.Result)
}
