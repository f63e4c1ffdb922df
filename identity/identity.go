// Package identity verifies bearer credentials issued by Firebase Auth.
package identity

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/companieshouse/chs.go/log"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=identity.go -destination=mock_identity.go -package=identity

var (
	// ErrInvalidToken is returned for a credential that is malformed, expired or revoked
	ErrInvalidToken = errors.New("invalid id token")
	// ErrMissingEmail is returned for a valid token that carries no email claim
	ErrMissingEmail = fmt.Errorf("%w: no email claim", ErrInvalidToken)
)

// Verifier checks a bearer credential and returns the verified subject's email
type Verifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

// TokenVerifier is the part of the Firebase Auth client used to check id tokens
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier implements Verifier with Firebase Auth
type FirebaseVerifier struct {
	Tokens TokenVerifier
}

// NewFirebaseVerifier initialises a Firebase app from a service account file
func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initialising firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initialising firebase auth client: %w", err)
	}

	log.Info("firebase auth client initialised")

	return &FirebaseVerifier{Tokens: client}, nil
}

// Verify checks the id token signature, expiry and audience and returns its email claim.
// Rejected credentials wrap ErrInvalidToken, any other error means the token could not be checked.
func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (string, error) {

	token, err := v.Tokens.VerifyIDToken(ctx, idToken)
	if err != nil {
		if isRejected(err) {
			return "", fmt.Errorf("%w: %s", ErrInvalidToken, err)
		}
		return "", err
	}

	email, _ := token.Claims["email"].(string)
	if email == "" {
		return "", ErrMissingEmail
	}

	return email, nil
}

func isRejected(err error) bool {
	return auth.IsIDTokenInvalid(err) || auth.IsIDTokenExpired(err) || auth.IsIDTokenRevoked(err)
}
