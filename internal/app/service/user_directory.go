package service

import (
	"context"
	"fmt"
	"slices"

	"projecthub/internal/core/domain"
	"projecthub/internal/core/ports"
)

// UserDirectory turns user ids referenced by projects and tasks into summaries
// with one repository lookup per call.
type UserDirectory struct {
	userRepository ports.UserRepository
}

func NewUserDirectory(userRepository ports.UserRepository) *UserDirectory {
	return &UserDirectory{userRepository: userRepository}
}

var _ ports.UserDirectory = (*UserDirectory)(nil)

func (d *UserDirectory) Summaries(ctx context.Context, ids []domain.UserID) (map[domain.UserID]domain.UserSummary, error) {
	unique := make([]domain.UserID, 0, len(ids))
	for _, id := range ids {
		if id != "" && !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}
	summaries := make(map[domain.UserID]domain.UserSummary, len(unique))
	if len(unique) == 0 {
		return summaries, nil
	}

	users, err := d.userRepository.GetUsersByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("lookup %d users: %w", len(unique), err)
	}
	for _, user := range users {
		summaries[user.ID] = user.Summary()
	}
	return summaries, nil
}
