package auth

import (
	"context"
	"fmt"
	"strings"
	"support-desk/domain"
	"support-desk/errors"
)

const AuthorizationHeader = "Authorization"

type contextKey string

const principalKey contextKey = "principal"

// ResolvePrincipal turns an "Authorization: Bearer <jwt>" header value into the caller identity.
func (m *TokenManager) ResolvePrincipal(header string) (domain.Principal, error) {
	tokenStr, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !ok || tokenStr == "" {
		return domain.Principal{}, fmt.Errorf("authorization token is missing: %w", errors.ErrUnauthenticated)
	}

	claims, err := m.ValidateToken(tokenStr)
	if err != nil {
		return domain.Principal{}, err
	}
	return domain.Principal{
		ParticipantID: claims.UserID,
		Username:      claims.Username,
		Role:          claims.Role,
	}, nil
}

// Authenticate resolves the header and injects the principal into the context for downstream handlers.
func (m *TokenManager) Authenticate(ctx context.Context, header string) (context.Context, error) {
	principal, err := m.ResolvePrincipal(header)
	if err != nil {
		return ctx, err
	}
	return WithPrincipal(ctx, principal), nil
}

func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func PrincipalFrom(ctx context.Context) (domain.Principal, error) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, errors.ErrUnauthenticated
	}
	return p, nil
}

// RequireStaff is the capability check for staff-only operations.
func RequireStaff(p domain.Principal) error {
	if !p.IsStaff() {
		return fmt.Errorf("role %s: %w", p.Role, errors.ErrUnauthorized)
	}
	return nil
}
