package repository

import (
	"context"
	"database/sql"

	"github.com/jask/jaskcalc/internal/database"
)

// TapeRepo handles the calculation tape.
type TapeRepo struct {
	db *sql.DB
}

func NewTapeRepo(db *sql.DB) *TapeRepo { return &TapeRepo{db: db} }

// Append inserts e and drops the oldest rows beyond keep. keep <= 0 keeps everything.
func (r *TapeRepo) Append(ctx context.Context, e TapeEntry, keep int) error {
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO tape_entries(id, left_operand, operator, right_operand, result, failed, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?);
		`, e.ID, e.Left, e.Operator, e.Right, e.Result, e.Failed, e.CreatedAt)
		if err != nil {
			return err
		}
		if keep <= 0 {
			return nil
		}
		_, err = tx.ExecContext(ctx, `
		DELETE FROM tape_entries
		WHERE seq NOT IN (SELECT seq FROM tape_entries ORDER BY seq DESC LIMIT ?);
		`, keep)
		return err
	})
}

// Recent lists up to limit entries, newest first.
func (r *TapeRepo) Recent(ctx context.Context, limit int) ([]TapeEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT seq, id, left_operand, operator, right_operand, result, failed, created_at
	FROM tape_entries ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TapeEntry
	for rows.Next() {
		var e TapeEntry
		if err := rows.Scan(&e.Seq, &e.ID, &e.Left, &e.Operator, &e.Right, &e.Result, &e.Failed, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *TapeRepo) Get(ctx context.Context, id string) (*TapeEntry, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT seq, id, left_operand, operator, right_operand, result, failed, created_at
	FROM tape_entries WHERE id = ?`, id)
	var e TapeEntry
	if err := row.Scan(&e.Seq, &e.ID, &e.Left, &e.Operator, &e.Right, &e.Result, &e.Failed, &e.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *TapeRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tape_entries`).Scan(&n)
	return n, err
}

func (r *TapeRepo) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tape_entries`)
	return err
}
