package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyCompanyID contextKey = "company_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithCompanyID adds a company ID to the context
func WithCompanyID(ctx context.Context, companyID int) context.Context {
	return context.WithValue(ctx, ContextKeyCompanyID, companyID)
}

// CompanyIDFromContext extracts the company ID from context
func CompanyIDFromContext(ctx context.Context) (int, bool) {
	companyID, ok := ctx.Value(ContextKeyCompanyID).(int)
	return companyID, ok
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
