package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"
	defaultTokenURL   = "https://oauth2.googleapis.com/token"
	jwtBearerGrant    = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

// ServiceAccountKey is the subset of a Google service-account JSON key the
// proxy needs to authenticate against the Sheets API.
type ServiceAccountKey struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
	TokenURI    string `json:"token_uri"`
}

// ParseServiceAccountKey decodes the raw key JSON and checks the fields the
// token exchange depends on.
func ParseServiceAccountKey(raw string) (*ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return nil, fmt.Errorf("invalid service account key: %w", err)
	}
	if key.ClientEmail == "" || key.PrivateKey == "" {
		return nil, fmt.Errorf("service account key missing client_email or private_key")
	}
	if key.TokenURI == "" {
		key.TokenURI = defaultTokenURL
	}
	return &key, nil
}

// AccessToken exchanges a signed service-account assertion for a short-lived
// bearer token. Tokens are valid for about an hour but are not cached: each
// request re-derives one, matching the process-per-request model the proxy
// started life under.
//
// tokenURL overrides the key's token_uri when non-empty (tests).
func AccessToken(ctx context.Context, key *ServiceAccountKey, tokenURL string) (string, error) {
	endpoint := key.TokenURI
	if tokenURL != "" {
		endpoint = tokenURL
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(key.PrivateKey))
	if err != nil {
		return "", fmt.Errorf("failed to parse service account private key: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   key.ClientEmail,
		"scope": spreadsheetsScope,
		"aud":   endpoint,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign service account assertion: %w", err)
	}

	form := url.Values{
		"grant_type": {jwtBearerGrant},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &token); err != nil || token.AccessToken == "" {
		// Surface the raw provider response so operators can see why the
		// exchange was rejected. Fatal for this request; never retried.
		return "", fmt.Errorf("authentication failed: %s", strings.TrimSpace(string(body)))
	}

	return token.AccessToken, nil
}
