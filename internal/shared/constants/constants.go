// Package constants defines shared constant values used across the application.
package constants

const (
	// ContextKeyUsername is the gin context key carrying the authenticated admin username.
	ContextKeyUsername = "username"
	// ContextKeyUserRole is the gin context key carrying the authenticated role.
	ContextKeyUserRole = "user_role"

	// RoleAdmin is the only role the control plane issues.
	RoleAdmin = "admin"
)
