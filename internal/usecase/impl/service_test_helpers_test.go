package impl

import (
	"io"
	"log/slog"

	"coursebridge/config"
	"coursebridge/internal/domain/entity"
	"coursebridge/internal/usecase"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

// newTestUser builds an active user carrying the given roles.
func newTestUser(roles ...entity.RoleName) *entity.User {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
		Status:       entity.UserStatusActive,
	}

	for _, name := range roles {
		user.Roles = append(user.Roles, entity.Role{ID: uuid.New(), Name: name})
	}

	return user
}

func salesActor(userID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Roles: entity.RoleNames{entity.RoleSales}}
}

func adminActor(userID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Roles: entity.RoleNames{entity.RoleAdmin}}
}

func courseManagerActor(userID uuid.UUID) usecase.Actor {
	return usecase.Actor{UserID: userID, Roles: entity.RoleNames{entity.RoleCourseManager}}
}
