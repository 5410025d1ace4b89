package usecase

import (
	"math/rand"
	"sync"

	"review-assignment-service/internal/domain"
)

// MaxReviewers — верхняя граница количества ревьюверов, назначаемых при создании PR.
const MaxReviewers = 2

// ReviewerSelector выбирает ревьюверов из уже отфильтрованного пула кандидатов.
// Источник случайности передается явно, чтобы тесты могли зафиксировать seed.
// rand.Rand не потокобезопасен, а селектор один на все запросы, поэтому
// обращения к нему идут под мьютексом.
type ReviewerSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewReviewerSelector создает новый экземпляр ReviewerSelector.
func NewReviewerSelector(rnd *rand.Rand) *ReviewerSelector {
	return &ReviewerSelector{rnd: rnd}
}

// PickReviewers равновероятно выбирает до max кандидатов без повторов.
// Пустой пул — не ошибка: PR без ревьюверов валиден.
func (s *ReviewerSelector) PickReviewers(candidates []*domain.User, max int) []string {
	if len(candidates) == 0 || max <= 0 {
		return []string{}
	}

	n := max
	if len(candidates) < n {
		n = len(candidates)
	}

	s.mu.Lock()
	indices := s.rnd.Perm(len(candidates))
	s.mu.Unlock()
	selected := make([]string, 0, n)
	for i := 0; i < n; i++ {
		selected = append(selected, candidates[indices[i]].ID)
	}

	return selected
}

// PickReplacement равновероятно выбирает одного кандидата на замену.
func (s *ReviewerSelector) PickReplacement(candidates []*domain.User) (string, error) {
	if len(candidates) == 0 {
		return "", domain.ErrNoReviewerCandidate
	}

	s.mu.Lock()
	i := s.rnd.Intn(len(candidates))
	s.mu.Unlock()

	return candidates[i].ID, nil
}
