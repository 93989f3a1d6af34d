package forge

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// TokenSource yields API tokens for the forge. Implementations cache;
// Invalidate forces the next Token call to mint a fresh one.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate()
}

// StaticTokenSource wraps a fixed personal access token.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource returns a TokenSource for a fixed token.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

func (s *StaticTokenSource) Token(context.Context) (string, error) { return s.token, nil }
func (s *StaticTokenSource) Invalidate()                           {}

// AppTokenSource mints short-lived installation tokens for a forge app:
// a signed app JWT is exchanged for an installation access token, which
// is cached until shortly before expiry.
type AppTokenSource struct {
	apiBase        string
	appID          string
	installationID string
	key            *rsa.PrivateKey
	httpClient     *http.Client

	mu      sync.Mutex
	token   string
	expires time.Time
}

// NewAppTokenSource parses the PEM-encoded app private key and returns a
// token source for the installation.
func NewAppTokenSource(apiBase, appID, installationID, privateKeyPEM string) (*AppTokenSource, error) {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	key, err := parseRSAPrivateKey(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse app private key: %w", err)
	}
	return &AppTokenSource{
		apiBase:        strings.TrimSuffix(apiBase, "/"),
		appID:          appID,
		installationID: installationID,
		key:            key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (s *AppTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expires) {
		return s.token, nil
	}

	token, expires, err := s.exchange(ctx)
	if err != nil {
		return "", err
	}
	s.token = token
	// Renew a minute early to avoid racing the expiry.
	s.expires = expires.Add(-time.Minute)
	return token, nil
}

func (s *AppTokenSource) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expires = time.Time{}
}

func (s *AppTokenSource) exchange(ctx context.Context) (string, time.Time, error) {
	jwt, err := s.signAppJWT()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign app jwt: %w", err)
	}

	endpoint := fmt.Sprintf("%s/app/installations/%s/access_tokens", s.apiBase, s.installationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", time.Time{}, err
	}
	req.Header.Set("Authorization", "Bearer "+jwt)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("exchange installation token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", time.Time{}, &AuthError{StatusCode: resp.StatusCode, Endpoint: "/app/installations/access_tokens"}
	}
	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", time.Time{}, fmt.Errorf("token exchange returned %d: %s", resp.StatusCode, string(raw))
	}

	var out struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", time.Time{}, fmt.Errorf("decode token exchange response: %w", err)
	}
	return out.Token, out.ExpiresAt, nil
}

// signAppJWT builds the RS256 app JWT the forge expects: 10 minute
// lifetime, issued-at skewed a minute back.
func (s *AppTokenSource) signAppJWT() (string, error) {
	now := time.Now()
	header := map[string]string{"alg": "RS256", "typ": "JWT"}
	claims := map[string]interface{}{
		"iat": now.Add(-time.Minute).Unix(),
		"exp": now.Add(10 * time.Minute).Unix(),
		"iss": s.appID,
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", err
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	signingInput := base64.RawURLEncoding.EncodeToString(headerJSON) + "." +
		base64.RawURLEncoding.EncodeToString(claimsJSON)

	digest := sha256.Sum256([]byte(signingInput))
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.key, crypto.SHA256, digest[:])
	if err != nil {
		return "", err
	}
	return signingInput + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

func parseRSAPrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA")
	}
	return key, nil
}
