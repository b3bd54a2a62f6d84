package crypto

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signClaims(t *testing.T, claims Claims, method jwt.SigningMethod, key any) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}
	return token
}

func validClaims() Claims {
	now := time.Now()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: 42,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "42")
	}
}

func TestValidateTokenRejects(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := validClaims()
	wrongIssuer.Issuer = "wrong-issuer"

	wrongAudience := validClaims()
	wrongAudience.Audience = jwt.ClaimStrings{"wrong-audience"}

	noExpiry := validClaims()
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-valid-token"},
		{"wrong secret", signClaims(t, validClaims(), jwt.SigningMethodHS256, []byte("other-secret"))},
		{"expired", signClaims(t, expired, jwt.SigningMethodHS256, []byte(testSecret))},
		{"wrong issuer", signClaims(t, wrongIssuer, jwt.SigningMethodHS256, []byte(testSecret))},
		{"wrong audience", signClaims(t, wrongAudience, jwt.SigningMethodHS256, []byte(testSecret))},
		{"no expiry", signClaims(t, noExpiry, jwt.SigningMethodHS256, []byte(testSecret))},
		{"unsigned", signClaims(t, validClaims(), jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, testSecret)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestValidateTokenAcceptsHS512(t *testing.T) {
	token := signClaims(t, validClaims(), jwt.SigningMethodHS512, []byte(testSecret))
	if _, err := ValidateToken(token, testSecret); err != nil {
		t.Errorf("ValidateToken() unexpected error: %v", err)
	}
}
