package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued bearer token stays valid.
const TokenTTL = 7 * 24 * time.Hour

var ErrNoSecret = errors.New("auth: signing secret is empty")

type (
	// Claims is the decoded identity carried by a bearer token.
	Claims struct {
		UserID   string
		Username string
	}

	// Tokens issues and verifies HS256 bearer tokens against a single
	// shared secret.
	Tokens struct {
		secret []byte
		now    func() time.Time
	}

	// TokenOption tweaks a Tokens instance at construction time.
	TokenOption func(*Tokens)
)

// WithClock overrides the time source used when issuing tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(t *Tokens) {
		if now != nil {
			t.now = now
		}
	}
}

func NewTokens(secret []byte, opts ...TokenOption) (*Tokens, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	t := &Tokens{secret: secret, now: time.Now}
	for _, o := range opts {
		o(t)
	}
	return t, nil
}

// Issue signs a token for the given user, expiring TokenTTL from now.
func (t *Tokens) Issue(userID, username string) (string, error) {
	now := t.now()
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(TokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify decodes a bearer token. It returns the claims and true only when
// the signature checks out against the shared secret and the token has not
// expired; every other outcome, including garbage input, is reported as a
// plain false with no error.
func (t *Tokens) Verify(raw string) (Claims, bool) {
	parsed, err := jwt.Parse(raw, func(tk *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now))
	if err != nil || !parsed.Valid {
		return Claims{}, false
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, false
	}
	userID, _ := mc["userId"].(string)
	username, _ := mc["username"].(string)
	if userID == "" {
		return Claims{}, false
	}
	return Claims{UserID: userID, Username: username}, true
}
