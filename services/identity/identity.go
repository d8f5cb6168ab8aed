package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Profile holds the verified attributes returned by the identity provider's
// userinfo endpoint.
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Verifier exchanges a client-supplied access token for a verified profile.
type Verifier interface {
	Verify(ctx context.Context, accessToken string) (*Profile, error)
}

// VerificationError signals that the identity provider rejected the token or
// could not be reached. A single failed call is terminal; there is no retry.
type VerificationError struct {
	Status int
	Err    error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("identity verification failed: %v", e.Err)
	}
	return fmt.Sprintf("identity verification failed: userinfo endpoint returned status %d", e.Status)
}

func (e *VerificationError) Unwrap() error { return e.Err }

// HTTPVerifier verifies access tokens against an OAuth2 userinfo endpoint
// (Google's by default). It is stateless and stores nothing locally.
type HTTPVerifier struct {
	UserInfoURL string
	Client      *http.Client
}

// NewHTTPVerifier creates a verifier for the given userinfo endpoint.
func NewHTTPVerifier(userInfoURL string) *HTTPVerifier {
	return &HTTPVerifier{
		UserInfoURL: userInfoURL,
		Client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify calls the userinfo endpoint with the access token as a bearer
// credential and returns the verified profile attributes.
func (v *HTTPVerifier) Verify(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.UserInfoURL, nil)
	if err != nil {
		return nil, &VerificationError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.Client.Do(req)
	if err != nil {
		return nil, &VerificationError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &VerificationError{Status: resp.StatusCode}
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, &VerificationError{Err: fmt.Errorf("failed to decode userinfo payload: %w", err)}
	}
	if profile.Email == "" {
		return nil, &VerificationError{Err: fmt.Errorf("userinfo payload carries no email")}
	}
	return &profile, nil
}
