package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"review-assignment-service/internal/domain"
)

const (
	selectUserQuery = `
SELECT user_id, username, team_name, is_active
FROM users
WHERE user_id = $1;`

	selectActiveUsersByTeamQuery = `
SELECT user_id, username, team_name, is_active
FROM users
WHERE team_name = $1 AND is_active AND user_id <> $2
ORDER BY user_id;`

	updateUserActiveQuery = `
UPDATE users
SET is_active = $2, updated_at = now()
WHERE user_id = $1
RETURNING user_id, username, team_name, is_active;`
)

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, selectUserQuery, userID).
		Scan(&u.ID, &u.Username, &u.TeamName, &u.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// GetActiveUsersByTeam возвращает активных участников команды без excludeUserID.
// Это пул кандидатов для подбора ревьюверов, фильтрация выполняется на стороне БД.
func (r *UserRepository) GetActiveUsersByTeam(ctx context.Context, teamName string, excludeUserID string) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, selectActiveUsersByTeamQuery, teamName, excludeUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// UpdateActiveStatus обновляет флаг активности пользователя.
func (r *UserRepository) UpdateActiveStatus(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, updateUserActiveQuery, userID, isActive).
		Scan(&u.ID, &u.Username, &u.TeamName, &u.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return &u, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.TeamName, &u.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}
