package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/persnickety/venues-ms-go/internal/api_context"
)

func cloneClaims(c jwt.MapClaims) jwt.MapClaims {
	out := jwt.MapClaims{}
	for k, v := range c {
		out[k] = v
	}
	return out
}

func TestWithAuth(t *testing.T) {
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	mw := WithAuth(string(pubPEM))

	baseClaims := jwt.MapClaims{
		"iss":   "core",
		"aud":   "venues",
		"exp":   time.Now().Add(time.Minute).Unix(),
		"iat":   time.Now().Unix(),
		"sub":   "user-123",
		"roles": []any{"admin"},
	}

	tests := []struct {
		name           string
		modifyClaims   func(jwt.MapClaims) jwt.MapClaims
		tokenFactory   func(jwt.MapClaims) (string, error)
		authHeader     string
		wantStatus     int
		expectNextCall bool
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong prefix",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "bad signature",
			modifyClaims: func(c jwt.MapClaims) jwt.MapClaims { return c },
			tokenFactory: func(claims jwt.MapClaims) (string, error) {
				otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
				if err != nil {
					return "", err
				}
				return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(otherKey)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "wrong method",
			modifyClaims: func(c jwt.MapClaims) jwt.MapClaims { return c },
			tokenFactory: func(claims jwt.MapClaims) (string, error) {
				return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bad issuer",
			modifyClaims: func(c jwt.MapClaims) jwt.MapClaims {
				c = cloneClaims(c)
				c["iss"] = "other"
				return c
			},
			tokenFactory: func(claims jwt.MapClaims) (string, error) {
				return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privKey)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bad audience",
			modifyClaims: func(c jwt.MapClaims) jwt.MapClaims {
				c = cloneClaims(c)
				c["aud"] = "other"
				return c
			},
			tokenFactory: func(claims jwt.MapClaims) (string, error) {
				return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privKey)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired",
			modifyClaims: func(c jwt.MapClaims) jwt.MapClaims {
				c = cloneClaims(c)
				c["exp"] = time.Now().Add(-time.Minute).Unix()
				return c
			},
			tokenFactory: func(claims jwt.MapClaims) (string, error) {
				return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privKey)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing sub",
			modifyClaims: func(c jwt.MapClaims) jwt.MapClaims {
				c = cloneClaims(c)
				delete(c, "sub")
				return c
			},
			tokenFactory: func(claims jwt.MapClaims) (string, error) {
				return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privKey)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:         "happy path",
			modifyClaims: func(c jwt.MapClaims) jwt.MapClaims { return c },
			tokenFactory: func(claims jwt.MapClaims) (string, error) {
				return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privKey)
			},
			wantStatus:     http.StatusNoContent,
			expectNextCall: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if uid, ok := api_context.AuthUserIDFromContext(r.Context()); ok {
					w.Header().Set("X-UID", uid)
				}
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest("GET", "/any", nil)
			if tc.tokenFactory != nil {
				claims := tc.modifyClaims(baseClaims)
				tok, err := tc.tokenFactory(claims)
				if err != nil {
					t.Fatalf("sign token: %v", err)
				}
				req.Header.Set("Authorization", "Bearer "+tok)
			} else if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}

			rec := httptest.NewRecorder()
			mw(next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if nextCalled != tc.expectNextCall {
				t.Errorf("nextCalled = %v; want %v", nextCalled, tc.expectNextCall)
			}
			if tc.expectNextCall {
				if got := rec.Header().Get("X-UID"); got != "user-123" {
					t.Errorf("uid in context = %q; want %q", got, "user-123")
				}
			}
		})
	}
}

func TestWithAuth_PassthroughWithoutKey(t *testing.T) {
	mw := WithAuth("")

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest("GET", "/any", nil)
	rec := httptest.NewRecorder()
	mw(next).ServeHTTP(rec, req)

	if !nextCalled {
		t.Error("next handler should run without a configured key")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d; want %d", rec.Code, http.StatusNoContent)
	}
}
