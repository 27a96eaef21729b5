package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/database"
)

func openTapeRepo(t *testing.T) *TapeRepo {
	t.Helper()
	db, err := database.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	return NewTapeRepo(db)
}

func TestTapeAppendAndRecent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTapeRepo(t)

	created := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Append(ctx, TapeEntry{ID: "a", Left: "2", Operator: "+", Right: "3", Result: "5", CreatedAt: created}, 0))
	require.NoError(t, repo.Append(ctx, TapeEntry{ID: "b", Left: "5", Operator: "÷", Right: "0", Result: "Don't be silly", Failed: true, CreatedAt: created}, 0))

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "b", entries[0].ID)
	require.True(t, entries[0].Failed)
	require.Equal(t, "÷", entries[0].Operator)
	require.Equal(t, "a", entries[1].ID)
	require.Equal(t, "5", entries[1].Result)
	require.False(t, entries[1].Failed)
	require.True(t, created.Equal(entries[1].CreatedAt))
	require.Greater(t, entries[0].Seq, entries[1].Seq)

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "3", got.Right)

	missing, err := repo.Get(ctx, "zzz")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestTapeAppendTrims(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTapeRepo(t)

	for i := 0; i < 5; i++ {
		e := TapeEntry{ID: fmt.Sprintf("e%d", i), Left: "1", Operator: "+", Right: "1", Result: "2", CreatedAt: database.Now()}
		require.NoError(t, repo.Append(ctx, e, 3))
	}
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	entries, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, []string{"e4", "e3", "e2"}, []string{entries[0].ID, entries[1].ID, entries[2].ID})
}

func TestTapeClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTapeRepo(t)
	require.NoError(t, repo.Append(ctx, TapeEntry{ID: "x", Left: "1", Operator: "×", Right: "2", Result: "2", CreatedAt: database.Now()}, 0))
	require.NoError(t, repo.Clear(ctx))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestTapeDuplicateID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := openTapeRepo(t)
	e := TapeEntry{ID: "dup", Left: "1", Operator: "-", Right: "1", Result: "0", CreatedAt: database.Now()}
	require.NoError(t, repo.Append(ctx, e, 0))
	require.Error(t, repo.Append(ctx, e, 0))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
