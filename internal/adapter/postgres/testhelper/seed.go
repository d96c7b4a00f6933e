package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedDonation inserts a donation submission with its detail row and
// returns the generated submission id.
func SeedDonation(t *testing.T, pool *pgxpool.Pool, amount int) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	var id uuid.UUID
	err := pool.QueryRow(ctx,
		`INSERT INTO submissions (mission_type, first_name, last_name, email)
		 VALUES ('don', $1, $2, $3) RETURNING id`,
		"Seed"+suffix, "Donor", "seed-"+suffix+"@example.com",
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedDonation insert submission: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO donations (submission_id, amount, frequency) VALUES ($1, $2, 'ponctuel')`,
		id, amount,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDonation insert donation: %v", err)
	}

	return id
}
