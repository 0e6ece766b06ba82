package auth

import "context"

type contextKey string

const principalKey contextKey = "auth_principal"

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	UserID   string
	Username string
	Role     string
}

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext retrieves the authenticated principal, or nil.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey).(*Principal)
	return p
}

// ActorFromContext returns the caller's name and role for audit entries,
// falling back to the anonymous system actor when no principal is present.
func ActorFromContext(ctx context.Context) (name, role string) {
	if p := PrincipalFromContext(ctx); p != nil {
		return p.Username, p.Role
	}
	return "System User", "Staff"
}
