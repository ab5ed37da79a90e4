package mapper

import (
	"time"

	"projecthub/internal/adapter/http/dto"
	"projecthub/internal/core/domain"
)

// Timestamps keep sub-second precision.
const timeLayout = time.RFC3339Nano

// Users holds the summaries resolved for one response.
type Users map[domain.UserID]domain.UserSummary

// ToUserItem never exposes the password hash.
func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        string(user.ID),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: formatTime(user.CreatedAt),
	}
}

func (u Users) summary(id domain.UserID) dto.UserSummary {
	summary, ok := u[id]
	if !ok {
		return dto.UserSummary{ID: string(id)}
	}
	return dto.UserSummary{ID: string(summary.ID), Name: summary.Name, Email: summary.Email}
}

func (u Users) summaries(ids []domain.UserID) []dto.UserSummary {
	out := make([]dto.UserSummary, 0, len(ids))
	for _, id := range ids {
		out = append(out, u.summary(id))
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}
	value := formatTime(*t)
	return &value
}
