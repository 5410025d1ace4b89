package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"review-assignment-service/internal/domain"
)

const (
	insertPRQuery = `
INSERT INTO pull_requests (pull_request_id, pull_request_name, author_id)
VALUES ($1, $2, $3);`

	insertReviewerQuery = `
INSERT INTO pr_reviewers (pull_request_id, reviewer_id)
VALUES ($1, $2);`

	selectPRQuery = `
SELECT pull_request_id, pull_request_name, author_id, status, created_at, merged_at
FROM pull_requests
WHERE pull_request_id = $1;`

	selectReviewersQuery = `
SELECT reviewer_id
FROM pr_reviewers
WHERE pull_request_id = $1
ORDER BY created_at, reviewer_id;`

	mergePRQuery = `
UPDATE pull_requests
SET status = 'MERGED', merged_at = now()
WHERE pull_request_id = $1 AND status <> 'MERGED';`

	deleteReviewerQuery = `
DELETE FROM pr_reviewers
WHERE pull_request_id = $1 AND reviewer_id = $2;`

	selectUserAssignedPRsQuery = `
SELECT pr.pull_request_id, pr.pull_request_name, pr.author_id, pr.status, pr.created_at, pr.merged_at
FROM pull_requests pr
JOIN pr_reviewers r ON r.pull_request_id = pr.pull_request_id
WHERE r.reviewer_id = $1
ORDER BY pr.created_at, pr.pull_request_id;`

	existsPRQuery = `
SELECT EXISTS (SELECT 1 FROM pull_requests WHERE pull_request_id = $1);`
)

// PRRepository реализует взаимодействие с данными пул-реквестов в PostgreSQL.
type PRRepository struct {
	db *sql.DB
}

// NewPRRepository создает новый экземпляр PRRepository.
func NewPRRepository(db *sql.DB) domain.PRRepository {
	return &PRRepository{db: db}
}

// CreateWithReviewers создает PR и строки назначений одной транзакцией.
func (r *PRRepository) CreateWithReviewers(ctx context.Context, pr *domain.PullRequest, reviewerIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Создаем PR
	_, err = tx.ExecContext(ctx, insertPRQuery, pr.ID, pr.Name, pr.AuthorID)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.ErrPRAlreadyExists
		}
		return fmt.Errorf("failed to create PR: %w", err)
	}

	// 2. Назначаем ревьюверов
	for _, reviewerID := range reviewerIDs {
		_, err = tx.ExecContext(ctx, insertReviewerQuery, pr.ID, reviewerID)
		if err != nil {
			return fmt.Errorf("failed to assign reviewer %s: %w", reviewerID, err)
		}
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID возвращает PR по ID вместе со списком ревьюверов.
func (r *PRRepository) GetByID(ctx context.Context, prID string) (*domain.PullRequest, error) {
	pr, err := r.scanPR(r.db.QueryRowContext(ctx, selectPRQuery, prID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to get PR: %w", err)
	}

	reviewers, err := r.getReviewers(ctx, prID)
	if err != nil {
		return nil, err
	}
	pr.AssignedReviewers = reviewers

	return pr, nil
}

// Merge переводит PR в статус MERGED. Повторный вызов не перезаписывает merged_at:
// условие по статусу делает запись однократной, дальше возвращается текущее состояние.
func (r *PRRepository) Merge(ctx context.Context, prID string) (*domain.PullRequest, error) {
	_, err := r.db.ExecContext(ctx, mergePRQuery, prID)
	if err != nil {
		return nil, fmt.Errorf("failed to merge PR: %w", err)
	}

	return r.GetByID(ctx, prID)
}

// ReassignReviewer атомарно заменяет строку назначения старого ревьювера на нового.
// Удаление проверяется по количеству затронутых строк: из двух конкурентных замен
// одного и того же ревьювера вторая увидит ноль строк и получит NOT_ASSIGNED.
func (r *PRRepository) ReassignReviewer(ctx context.Context, prID, oldReviewerID, newReviewerID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Удаляем старого ревьювера
	res, err := tx.ExecContext(ctx, deleteReviewerQuery, prID, oldReviewerID)
	if err != nil {
		return fmt.Errorf("failed to remove reviewer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removed rows: %w", err)
	}
	if affected == 0 {
		err = domain.ErrReviewerNotAssigned
		return err
	}

	// 2. Добавляем нового ревьювера
	_, err = tx.ExecContext(ctx, insertReviewerQuery, prID, newReviewerID)
	if err != nil {
		return fmt.Errorf("failed to assign new reviewer: %w", err)
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetUserAssignedPRs возвращает PR, где пользователь назначен ревьювером.
func (r *PRRepository) GetUserAssignedPRs(ctx context.Context, userID string) ([]*domain.PullRequest, error) {
	rows, err := r.db.QueryContext(ctx, selectUserAssignedPRsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user assigned PRs: %w", err)
	}
	defer rows.Close()

	prs := make([]*domain.PullRequest, 0)
	for rows.Next() {
		pr, err := r.scanPR(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assigned PR: %w", err)
		}
		prs = append(prs, pr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assigned PRs: %w", err)
	}

	return prs, nil
}

// ExistsPr проверяет существование PR.
func (r *PRRepository) ExistsPr(ctx context.Context, prID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsPRQuery, prID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pr exists: %w", err)
	}
	return exists, nil
}

func (r *PRRepository) getReviewers(ctx context.Context, prID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectReviewersQuery, prID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewers: %w", err)
	}
	defer rows.Close()

	reviewers := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan reviewer: %w", err)
		}
		reviewers = append(reviewers, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviewers: %w", err)
	}

	return reviewers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PRRepository) scanPR(row rowScanner) (*domain.PullRequest, error) {
	var (
		pr       domain.PullRequest
		mergedAt sql.NullTime
	)

	err := row.Scan(&pr.ID, &pr.Name, &pr.AuthorID, &pr.Status, &pr.CreatedAt, &mergedAt)
	if err != nil {
		return nil, err
	}

	// Конвертируем NullTime → *time.Time
	if mergedAt.Valid {
		t := mergedAt.Time
		pr.MergedAt = &t
	}

	return &pr, nil
}
