// Package storectx carries the authenticated store identity through request
// contexts.
package storectx

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
)

type storeKey struct{}
type roleKey struct{}
type requestIDKey struct{}

// Role identifies what the authenticated principal may do.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

// WithStoreID stores the active store ID in the context.
func WithStoreID(ctx context.Context, storeID snowflake.ID) context.Context {
	return context.WithValue(ctx, storeKey{}, storeID)
}

// StoreIDFromContext returns the store ID from context, if set.
func StoreIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	if ctx == nil {
		return 0, false
	}

	switch typed := ctx.Value(storeKey{}).(type) {
	case snowflake.ID:
		return typed, true
	case int64:
		return snowflake.ID(typed), true
	case string:
		parsed, err := snowflake.ParseString(strings.TrimSpace(typed))
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// WithRole stores the principal role in the context.
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

// RoleFromContext returns the principal role, defaulting to owner.
func RoleFromContext(ctx context.Context) Role {
	if ctx == nil {
		return RoleOwner
	}
	if role, ok := ctx.Value(roleKey{}).(Role); ok && role != "" {
		return role
	}
	return RoleOwner
}

// WithRequestID stores the request correlation ID in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext returns the request correlation ID, if set.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
