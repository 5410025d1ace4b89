package usecase

import (
	"context"
	"errors"

	"review-assignment-service/internal/domain"
)

// PRUseCase реализует бизнес-логику для работы с пул-реквестами.
type PRUseCase struct {
	prRepo   domain.PRRepository
	userRepo domain.UserRepository
	selector *ReviewerSelector
}

// NewPRUseCase создает новый экземпляр PRUseCase.
func NewPRUseCase(prRepo domain.PRRepository, userRepo domain.UserRepository, selector *ReviewerSelector) domain.PRUseCase {
	return &PRUseCase{
		prRepo:   prRepo,
		userRepo: userRepo,
		selector: selector,
	}
}

// CreatePR создает PR и автоматически назначает до двух ревьюверов
// из активных участников команды автора. Команда из одного автора — не ошибка,
// PR создается без ревьюверов.
func (uc *PRUseCase) CreatePR(ctx context.Context, prID, prName, authorID string) (*domain.PullRequest, error) {
	// Валидация входных данных
	if prID == "" {
		return nil, domain.ErrInvalidPRID
	}
	if prName == "" {
		return nil, domain.ErrInvalidPRName
	}
	if authorID == "" {
		return nil, domain.ErrInvalidUserID
	}

	// 1. Проверяем, что PR не существует
	exists, err := uc.prRepo.ExistsPr(ctx, prID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrPRAlreadyExists
	}

	// 2. Проверяем, что автор существует и активен.
	// Инфраструктурные ошибки уходят наверх как есть, в NOT_FOUND их не сворачиваем.
	author, err := uc.userRepo.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, err
	}
	if !author.IsActive {
		return nil, domain.ErrAuthorInactive
	}

	// 3. Пул кандидатов: активные участники команды автора без самого автора
	candidates, err := uc.userRepo.GetActiveUsersByTeam(ctx, author.TeamName, authorID)
	if err != nil {
		return nil, err
	}

	// 4. Выбираем ревьюверов и сохраняем PR с назначениями одной транзакцией
	reviewerIDs := uc.selector.PickReviewers(candidates, MaxReviewers)

	pr := &domain.PullRequest{
		ID:       prID,
		Name:     prName,
		AuthorID: authorID,
		Status:   domain.PRStatusOpen,
	}

	if err := uc.prRepo.CreateWithReviewers(ctx, pr, reviewerIDs); err != nil {
		return nil, err
	}

	// 5. Перечитываем сохраненное состояние
	return uc.prRepo.GetByID(ctx, prID)
}

// MergePR переводит PR в статус MERGED. Операция идемпотентна:
// повторный вызов возвращает текущее состояние без новой записи.
func (uc *PRUseCase) MergePR(ctx context.Context, prID string) (*domain.PullRequest, error) {
	if prID == "" {
		return nil, domain.ErrInvalidPRID
	}

	exists, err := uc.prRepo.ExistsPr(ctx, prID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrPRNotFound
	}

	return uc.prRepo.Merge(ctx, prID)
}

// ReassignReviewer заменяет назначенного ревьювера на случайного активного
// участника его команды. Автор PR и уже назначенные ревьюверы в пул замены
// не попадают, поэтому состав ревьюверов остается без дублей.
func (uc *PRUseCase) ReassignReviewer(ctx context.Context, prID, oldReviewerID string) (*domain.PullRequest, string, error) {
	if prID == "" {
		return nil, "", domain.ErrInvalidPRID
	}
	if oldReviewerID == "" {
		return nil, "", domain.ErrInvalidUserID
	}

	// 1. Получаем PR вместе с текущими назначениями
	pr, err := uc.prRepo.GetByID(ctx, prID)
	if err != nil {
		return nil, "", err
	}

	// 2. Нельзя менять ревьюверов у MERGED PR
	if pr.Status == domain.PRStatusMerged {
		return nil, "", domain.ErrPRAlreadyMerged
	}

	// 3. Старый ревьювер должен быть назначен на PR
	if !containsID(pr.AssignedReviewers, oldReviewerID) {
		return nil, "", domain.ErrReviewerNotAssigned
	}

	// 4. Команду для замены берем у старого ревьювера
	oldReviewer, err := uc.userRepo.GetByID(ctx, oldReviewerID)
	if err != nil {
		return nil, "", err
	}

	// 5. Пул замены: активные участники той же команды без старого ревьювера,
	// автора PR и остальных назначенных ревьюверов
	candidates, err := uc.userRepo.GetActiveUsersByTeam(ctx, oldReviewer.TeamName, oldReviewerID)
	if err != nil {
		return nil, "", err
	}

	filtered := make([]*domain.User, 0, len(candidates))
	for _, u := range candidates {
		if u.ID == pr.AuthorID {
			continue
		}
		if containsID(pr.AssignedReviewers, u.ID) {
			continue
		}
		filtered = append(filtered, u)
	}

	// 6. Выбираем замену
	newReviewerID, err := uc.selector.PickReplacement(filtered)
	if err != nil {
		return nil, "", err
	}

	// 7. Атомарно заменяем строку назначения
	if err := uc.prRepo.ReassignReviewer(ctx, prID, oldReviewerID, newReviewerID); err != nil {
		return nil, "", err
	}

	// 8. Перечитываем обновленный PR
	updatedPR, err := uc.prRepo.GetByID(ctx, prID)
	if err != nil {
		return nil, "", err
	}

	return updatedPR, newReviewerID, nil
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
