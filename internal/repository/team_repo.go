package repository

import (
	"context"
	"database/sql"
	"fmt"

	"review-assignment-service/internal/domain"
)

const (
	insertTeamQuery = `
INSERT INTO teams (team_name)
VALUES ($1);`

	upsertUserQuery = `
INSERT INTO users (user_id, username, team_name, is_active)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET username = EXCLUDED.username,
    team_name = EXCLUDED.team_name,
    is_active = EXCLUDED.is_active,
    updated_at = now();`

	existsTeamQuery = `
SELECT EXISTS (SELECT 1 FROM teams WHERE team_name = $1);`

	selectTeamMembersQuery = `
SELECT user_id, username, team_name, is_active
FROM users
WHERE team_name = $1
ORDER BY user_id;`

	selectActiveTeamMembersQuery = `
SELECT user_id, username, team_name, is_active
FROM users
WHERE team_name = $1 AND is_active
ORDER BY user_id;`

	selectOpenPRsWithTeamReviewersQuery = `
SELECT DISTINCT pr.pull_request_id
FROM pull_requests pr
JOIN pr_reviewers r ON r.pull_request_id = pr.pull_request_id
JOIN users u ON u.user_id = r.reviewer_id
WHERE pr.status = 'OPEN' AND u.team_name = $1
ORDER BY pr.pull_request_id;`

	selectPRReviewersFromTeamQuery = `
SELECT r.reviewer_id
FROM pr_reviewers r
JOIN users u ON u.user_id = r.reviewer_id
WHERE r.pull_request_id = $1 AND u.team_name = $2
ORDER BY r.reviewer_id;`

	selectAllTeamsQuery = `
SELECT team_name FROM teams ORDER BY team_name;`
)

// TeamRepository реализует взаимодействие с данными команд в PostgreSQL.
type TeamRepository struct {
	db *sql.DB
}

// NewTeamRepository создает новый экземпляр TeamRepository.
func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &TeamRepository{db: db}
}

// Create создает команду и создает/переводит в нее пользователей одной транзакцией.
func (r *TeamRepository) Create(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// 1. Создаем команду
	_, err = tx.ExecContext(ctx, insertTeamQuery, team.Name)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.ErrTeamAlreadyExists
		}
		return fmt.Errorf("failed to create team: %w", err)
	}

	// 2. Создаем/обновляем пользователей команды
	for _, member := range team.Members {
		_, err = tx.ExecContext(ctx, upsertUserQuery, member.ID, member.Username, team.Name, member.IsActive)
		if err != nil {
			return fmt.Errorf("failed to upsert user %s: %w", member.ID, err)
		}
	}

	// 3. Коммитим транзакцию
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByName возвращает команду со всеми участниками.
func (r *TeamRepository) GetByName(ctx context.Context, teamName string) (*domain.Team, error) {
	exists, err := r.ExistsTeam(ctx, teamName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrTeamNotFound
	}

	rows, err := r.db.QueryContext(ctx, selectTeamMembersQuery, teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	defer rows.Close()

	members, err := scanUsers(rows)
	if err != nil {
		return nil, err
	}

	return &domain.Team{
		Name:    teamName,
		Members: members,
	}, nil
}

// ExistsTeam проверяет существование команды.
func (r *TeamRepository) ExistsTeam(ctx context.Context, teamName string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsTeamQuery, teamName).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}

// GetActiveUsersFromTeam возвращает активных пользователей команды.
func (r *TeamRepository) GetActiveUsersFromTeam(ctx context.Context, teamName string) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, selectActiveTeamMembersQuery, teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to get active team users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// GetOpenPRsWithTeamReviewers возвращает открытые PR, где ревьювером назначен кто-то из команды.
func (r *TeamRepository) GetOpenPRsWithTeamReviewers(ctx context.Context, teamName string) ([]string, error) {
	return r.selectIDs(ctx, selectOpenPRsWithTeamReviewersQuery, teamName)
}

// GetPRReviewersFromTeam возвращает ревьюверов PR, состоящих в указанной команде.
func (r *TeamRepository) GetPRReviewersFromTeam(ctx context.Context, prID, teamName string) ([]string, error) {
	return r.selectIDs(ctx, selectPRReviewersFromTeamQuery, prID, teamName)
}

// GetAllTeams возвращает названия всех команд.
func (r *TeamRepository) GetAllTeams(ctx context.Context) ([]string, error) {
	return r.selectIDs(ctx, selectAllTeamsQuery)
}

func (r *TeamRepository) selectIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ids: %w", err)
	}

	return ids, nil
}
