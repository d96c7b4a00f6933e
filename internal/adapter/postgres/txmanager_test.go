//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/nexus-missions/internal/adapter/postgres"
	"github.com/heartmarshall/nexus-missions/internal/adapter/postgres/testhelper"
)

// submissionExists checks whether a submission row with the given ID exists in the database.
func submissionExists(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) bool {
	t.Helper()
	var exists bool
	err := pool.QueryRow(
		context.Background(),
		`SELECT EXISTS(SELECT 1 FROM submissions WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		t.Fatalf("submissionExists query: %v", err)
	}
	return exists
}

func insertSubmission(ctx context.Context, q postgres.Querier, id uuid.UUID, email string) error {
	_, err := q.Exec(ctx,
		`INSERT INTO submissions (id, mission_type, first_name, last_name, email)
		 VALUES ($1, 'contact', 'Tx', 'Test', $2)`,
		id, email,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertSubmission(ctx, postgres.QuerierFromCtx(ctx, pool), id, "commit-test@example.com")
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	if !submissionExists(t, pool, id) {
		t.Fatal("expected submission to exist after committed transaction")
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		execErr := insertSubmission(ctx, q, id, "rollback-test@example.com")
		if execErr != nil {
			t.Fatalf("insert inside tx failed: %v", execErr)
		}
		return sentinel
	})

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}

	if submissionExists(t, pool, id) {
		t.Fatal("expected submission NOT to exist after rolled-back transaction")
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic to be re-raised")
		}
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}

		if submissionExists(t, pool, id) {
			t.Fatal("expected submission NOT to exist after panic-rolled-back transaction")
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		err := insertSubmission(ctx, q, id, "panic-test@example.com")
		if err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}

func TestRunInTx_QuerierFromCtx_UsesTx(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)

	id := uuid.New()

	// Insert inside a transaction, then verify it's visible within the same tx
	// but NOT outside until commit.
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		err := insertSubmission(ctx, q, id, "ctx-test@example.com")
		if err != nil {
			return err
		}

		// Should be visible within the transaction.
		var exists bool
		err = q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM submissions WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return err
		}
		if !exists {
			t.Fatal("expected submission to be visible within the transaction")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}

	// After commit, also visible outside.
	if !submissionExists(t, pool, id) {
		t.Fatal("expected submission to exist after committed transaction")
	}
}
