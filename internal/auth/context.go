package auth

import (
	"context"

	"github.com/gunnargantzel/NMS-sub000/internal/domain"
)

// SystemUserID identifies requests authenticated with the system API key
const SystemUserID int64 = 0

// UserContext holds authenticated user information
type UserContext struct {
	UserID      int64
	Username    string
	DisplayName string
	Role        domain.UserRole
	// System is set for the x-api-key principal
	System bool
}

type contextKey string

const userContextKey contextKey = "userContext"

// WithUserContext adds user context to the context
func WithUserContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// FromContext extracts user context from the context
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(userContextKey).(*UserContext)
	return user, ok
}

// HasAnyRole checks if user has one of the roles. The system principal
// has every role.
func (u *UserContext) HasAnyRole(roles ...domain.UserRole) bool {
	if u.System {
		return true
	}
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// IsAdmin checks if user is an administrator
func (u *UserContext) IsAdmin() bool {
	return u.HasAnyRole(domain.RoleAdmin)
}

// CreatorID returns the user id to record as creator, nil for the system principal
func CreatorID(ctx context.Context) *int64 {
	user, ok := FromContext(ctx)
	if !ok || user.System {
		return nil
	}
	id := user.UserID
	return &id
}
