// Package auth provides account registration, password checks and session tokens.
package auth

import (
	"context"

	"github.com/ling-4j/prosperpath/internal/models"
)

// Authenticator registers accounts and checks their credentials.
type Authenticator interface {
	// Register creates an account. Fails with Conflict when the email is taken
	// and Validation when the credential is too weak.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account for a matching email and credential,
	// or an Unauthenticated error.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks a credential before it is stored.
	ValidateCredential(credential string) error
}
