package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(123, testNow, time.Hour, "secret-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.UserID != 123 {
		t.Errorf("expected user id 123, got %d", token.UserID)
	}
	if !token.ExpiresAt.Equal(testNow.Add(time.Hour)) {
		t.Errorf("expected expiry %v, got %v", testNow.Add(time.Hour), token.ExpiresAt)
	}

	claims, err := ParseUnverifiedClaims(token.SignedString)
	if err != nil {
		t.Fatalf("could not decode claims: %v", err)
	}
	if claims.UserID != "123" {
		t.Errorf("expected id claim '123', got %q", claims.UserID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		key      string
	}{
		{"zero duration", 0, "key"},
		{"negative duration", -time.Hour, "key"},
		{"empty key", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(1, testNow, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken(456, testNow, 5*time.Minute, "secret-key")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", fixedClock(testNow.Add(time.Minute)))
	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.UserID != 456 {
		t.Errorf("expected userID 456, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken(1, testNow, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", fixedClock(testNow))
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	genToken, _ := GenerateJWTToken(1, testNow, time.Hour, "key")
	exp := testNow.Add(time.Hour)

	if _, err := ValidateAndParseJWTToken(genToken.SignedString, "key", fixedClock(exp.Add(-time.Second))); err != nil {
		t.Errorf("expected token valid one second before expiry, got %v", err)
	}

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", fixedClock(exp))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected expired error at exp, got %v", err)
	}
}

func TestValidateAndParseJWTToken_NotYetValid(t *testing.T) {
	genToken, _ := GenerateJWTToken(1, testNow, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", fixedClock(testNow.Add(-time.Minute)))
	if !errors.Is(err, jwt.ErrTokenNotValidYet) {
		t.Errorf("expected not-valid-yet error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{"id": "1", "exp": testNow.Add(time.Hour).Unix()}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "key", fixedClock(testNow)); err == nil {
		t.Error("expected HS512 token to be rejected")
	}

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := ValidateAndParseJWTToken(none, "key", fixedClock(testNow)); err == nil {
		t.Error("expected unsigned token to be rejected")
	}
}

func TestValidateAndParseJWTToken_ClaimProblems(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing exp", jwt.MapClaims{"id": "1"}},
		{"missing id", jwt.MapClaims{"exp": testNow.Add(time.Hour).Unix()}},
		{"non-numeric id", jwt.MapClaims{"id": "abc", "exp": testNow.Add(time.Hour).Unix()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte("key"))
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			if _, err := ValidateAndParseJWTToken(signed, "key", fixedClock(testNow)); err == nil {
				t.Error("expected token to be rejected")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not.a.token", "abc", strings.Repeat(".", 5)} {
		if _, err := ValidateAndParseJWTToken(raw, "key", fixedClock(testNow)); err == nil {
			t.Errorf("expected error for malformed token %q, got nil", raw)
		}
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "abc", want: "abc"},
		{header: "Bearer", want: "Bearer"},
		{header: "", wantErr: true},
		{header: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrNoBearerToken) {
					t.Errorf("expected ErrNoBearerToken, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseUnverifiedClaims_Malformed(t *testing.T) {
	if _, err := ParseUnverifiedClaims("garbage"); err == nil {
		t.Error("expected error for malformed token")
	}
}
