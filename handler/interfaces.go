package handler

import (
	"context"

	"video-digest/driver"
	"video-digest/usecase/digest"
)

//go:generate mockgen -source=interfaces.go -destination=../test/mocks/handler_mocks.go -package=mocks

// Digester runs the digest flow for one video URL.
type Digester interface {
	Digest(ctx context.Context, req digest.Request) (*digest.Result, error)
}

// SessionResolver resolves a bearer session token into a user session.
type SessionResolver interface {
	CurrentUser(ctx context.Context, sessionToken string) (*driver.UserSession, error)
}
