// Package submission implements the submission store using PostgreSQL.
// The common columns live in submissions; each mission type has its own
// detail table keyed by submission_id.
package submission

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/nexus-missions/internal/adapter/postgres"
	"github.com/heartmarshall/nexus-missions/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides submission persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Pool
	tx   *postgres.TxManager
}

// New creates a new submission repository.
func New(pool postgres.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// Create inserts the submission and its detail row in one transaction.
// The database generates id and created_at; both are written back to sub.
func (r *Repo) Create(ctx context.Context, sub *domain.Submission) error {
	detail, err := detailInsert(sub.Details)
	if err != nil {
		return err
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		query, args, err := psql.Insert("submissions").
			Columns("mission_type", "first_name", "last_name", "email", "message", "emotion_preference").
			Values(string(sub.MissionType()), sub.FirstName, sub.LastName, sub.Email, sub.Message, string(sub.Emotion)).
			Suffix("RETURNING id, created_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert submission: %w", err)
		}

		var (
			id        uuid.UUID
			createdAt time.Time
		)
		if err := q.QueryRow(ctx, query, args...).Scan(&id, &createdAt); err != nil {
			return postgres.MapError(err, "submission", uuid.Nil)
		}

		query, args, err = detail.Values(append([]any{id}, detailValues(sub.Details)...)...).ToSql()
		if err != nil {
			return fmt.Errorf("build insert %s: %w", sub.MissionType(), err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "submission", id)
		}

		sub.ID = id
		sub.CreatedAt = createdAt.UTC()
		return nil
	})
}

// GetByID returns a submission with its details.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query, args, err := selectSubmissions().Where(sq.Eq{"s.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select submission: %w", err)
	}

	sub, err := scanSubmission(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "submission", id)
	}
	return sub, nil
}

// List returns all submissions, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Submission, error) {
	query, args, err := selectSubmissions().OrderBy("s.created_at DESC", "s.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list submissions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	out := []domain.Submission{}
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		out = append(out, *sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return out, nil
}

// SetThankYouMessage stores the thank-you message once. The update only
// matches a row whose message is still NULL, so concurrent writers cannot
// both succeed.
func (r *Repo) SetThankYouMessage(ctx context.Context, id uuid.UUID, message string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Update("submissions").
		Set("ai_thank_you_message", message).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"ai_thank_you_message": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update thank-you: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "submission", id)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM submissions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "submission", id)
	}
	if exists {
		return fmt.Errorf("submission %s: thank-you message: %w", id, domain.ErrConflict)
	}
	return fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
}
