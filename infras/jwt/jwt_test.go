package jwt_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todoapp/config"
	"todoapp/infras/jwt"

	"github.com/go-jose/go-jose/v4"
	jwtGo "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = testSecret
	cfg.JWT.Issuer = "https://issuer.test/"

	return cfg
}

func sign(t *testing.T, method jwtGo.SigningMethod, key any, claims jwtGo.Claims) string {
	t.Helper()

	token, err := jwtGo.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestService_ValidateToken(t *testing.T) {
	svc := jwt.New(newConfig())
	now := time.Now()

	tests := []struct {
		name     string
		token    string
		wantUser string
		wantErr  error
	}{
		{
			name: "valid token with subject",
			token: sign(t, jwtGo.SigningMethodHS256, []byte(testSecret), jwtGo.RegisteredClaims{
				Subject:   "auth0|u1",
				Issuer:    "https://issuer.test/",
				ExpiresAt: jwtGo.NewNumericDate(now.Add(time.Hour)),
			}),
			wantUser: "auth0|u1",
		},
		{
			name: "user_id claim wins over subject",
			token: sign(t, jwtGo.SigningMethodHS256, []byte(testSecret), jwt.Claims{
				UserID: "u2",
				RegisteredClaims: jwtGo.RegisteredClaims{
					Subject:   "auth0|u1",
					Issuer:    "https://issuer.test/",
					ExpiresAt: jwtGo.NewNumericDate(now.Add(time.Hour)),
				},
			}),
			wantUser: "u2",
		},
		{
			name: "expired token",
			token: sign(t, jwtGo.SigningMethodHS256, []byte(testSecret), jwtGo.RegisteredClaims{
				Subject:   "u1",
				Issuer:    "https://issuer.test/",
				ExpiresAt: jwtGo.NewNumericDate(now.Add(-time.Hour)),
			}),
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: sign(t, jwtGo.SigningMethodHS256, []byte("other"), jwtGo.RegisteredClaims{
				Subject: "u1",
				Issuer:  "https://issuer.test/",
			}),
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: sign(t, jwtGo.SigningMethodHS256, []byte(testSecret), jwtGo.RegisteredClaims{
				Subject: "u1",
				Issuer:  "https://someone-else.test/",
			}),
			wantErr: jwt.ErrInvalidClaim,
		},
		{
			name: "missing subject",
			token: sign(t, jwtGo.SigningMethodHS256, []byte(testSecret), jwtGo.RegisteredClaims{
				Issuer: "https://issuer.test/",
			}),
			wantErr: jwt.ErrInvalidClaim,
		},
		{
			name:    "garbage",
			token:   "not-a-token",
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, claims.User())
		})
	}
}

const testKeyID = "test-key"

func newKeySetServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()

	keySet, err := json.Marshal(jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{
		Key:       &key.PublicKey,
		KeyID:     testKeyID,
		Algorithm: string(jose.RS256),
		Use:       "sig",
	}}})
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(keySet)
	}))
	t.Cleanup(server.Close)

	return server
}

func signRS256(t *testing.T, key *rsa.PrivateKey, kid string, claims jwtGo.Claims) string {
	t.Helper()

	token := jwtGo.NewWithClaims(jwtGo.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestService_ValidateTokenWithKeySet(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	cfg := newConfig()
	cfg.JWT.JWKSURL = newKeySetServer(t, key).URL
	cfg.JWT.Audience = "https://todo-api"

	svc := jwt.New(cfg)
	now := time.Now()

	claims := func(issuer, audience string, expiresAt time.Time) jwtGo.RegisteredClaims {
		return jwtGo.RegisteredClaims{
			Subject:   "auth0|u1",
			Issuer:    issuer,
			Audience:  jwtGo.ClaimStrings{audience, "https://tenant.auth0.com/userinfo"},
			ExpiresAt: jwtGo.NewNumericDate(expiresAt),
			IssuedAt:  jwtGo.NewNumericDate(now),
		}
	}

	tests := []struct {
		name     string
		token    string
		wantUser string
		wantErr  error
	}{
		{
			name:     "valid provider token",
			token:    signRS256(t, key, testKeyID, claims("https://issuer.test/", "https://todo-api", now.Add(time.Hour))),
			wantUser: "auth0|u1",
		},
		{
			name:    "expired",
			token:   signRS256(t, key, testKeyID, claims("https://issuer.test/", "https://todo-api", now.Add(-time.Hour))),
			wantErr: jwt.ErrExpiredToken,
		},
		{
			name:    "signed by unknown key",
			token:   signRS256(t, otherKey, testKeyID, claims("https://issuer.test/", "https://todo-api", now.Add(time.Hour))),
			wantErr: jwt.ErrInvalidToken,
		},
		{
			name:    "wrong audience",
			token:   signRS256(t, key, testKeyID, claims("https://issuer.test/", "https://other-api", now.Add(time.Hour))),
			wantErr: jwt.ErrInvalidClaim,
		},
		{
			name:    "wrong issuer",
			token:   signRS256(t, key, testKeyID, claims("https://someone-else.test/", "https://todo-api", now.Add(time.Hour))),
			wantErr: jwt.ErrInvalidClaim,
		},
		{
			name: "shared secret token is rejected",
			token: sign(t, jwtGo.SigningMethodHS256, []byte(testSecret), claims(
				"https://issuer.test/", "https://todo-api", now.Add(time.Hour))),
			wantErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ValidateToken(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, got.User())
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
