package auth

import (
	"testing"
	"time"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestIssueVerifyRoundTrip(t *testing.T) {
	tokens, err := NewTokens(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := tokens.Issue("64c1f0aa2b3c4d5e6f708192", "alice")
	if err != nil {
		t.Fatal(err)
	}
	claims, ok := tokens.Verify(raw)
	if !ok {
		t.Fatal("freshly issued token should verify")
	}
	if claims.UserID != "64c1f0aa2b3c4d5e6f708192" || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestWrongSecret(t *testing.T) {
	issuer, err := NewTokens(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	verifier, err := NewTokens([]byte("another-secret-another-secret-32"))
	if err != nil {
		t.Fatal(err)
	}
	raw, err := issuer.Issue("64c1f0aa2b3c4d5e6f708192", "alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := verifier.Verify(raw); ok {
		t.Fatal("token signed with a different secret should not verify")
	}
}

func TestExpiredToken(t *testing.T) {
	past := func() time.Time { return time.Now().Add(-TokenTTL - time.Hour) }
	issuer, err := NewTokens(testSecret, WithClock(past))
	if err != nil {
		t.Fatal(err)
	}
	verifier, err := NewTokens(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := issuer.Issue("64c1f0aa2b3c4d5e6f708192", "alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := verifier.Verify(raw); ok {
		t.Fatal("expired token should not verify")
	}
}

func TestClockIsConsistentAcrossIssueAndVerify(t *testing.T) {
	// a Tokens pinned to a past instant must consider its own fresh
	// tokens valid, since both sides run off the same clock
	at := time.Now().Add(-TokenTTL - time.Hour)
	tokens, err := NewTokens(testSecret, WithClock(func() time.Time { return at }))
	if err != nil {
		t.Fatal(err)
	}
	raw, err := tokens.Issue("64c1f0aa2b3c4d5e6f708192", "alice")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tokens.Verify(raw); !ok {
		t.Fatal("token should verify under the clock that issued it")
	}
}

func TestGarbageTokens(t *testing.T) {
	tokens, err := NewTokens(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, ok := tokens.Verify(raw); ok {
			t.Fatalf("garbage token %q should not verify", raw)
		}
	}
}

func TestEmptySecretRejected(t *testing.T) {
	if _, err := NewTokens(nil); err == nil {
		t.Fatal("an empty signing secret should be rejected")
	}
}

func TestSecretFromEnvScrubs(t *testing.T) {
	env := map[string]string{"TEST_SECRET": "super-secret"}
	getfn := func(name string) string { return env[name] }
	setfn := func(name, val string) error {
		env[name] = val
		return nil
	}
	secret, err := SecretFromEnv("TEST_SECRET", getfn, setfn)
	if err != nil {
		t.Fatal(err)
	}
	if string(secret) != "super-secret" {
		t.Fatalf("unexpected secret %q", secret)
	}
	if env["TEST_SECRET"] != "" {
		t.Fatal("reading the secret should remove it from the environment")
	}
	if _, err := SecretFromEnv("TEST_SECRET", getfn, setfn); err == nil {
		t.Fatal("a missing secret must be an error, never a default")
	}
}
