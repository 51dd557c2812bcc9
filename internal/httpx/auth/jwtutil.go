package auth

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"furniquote/internal/config"
	"furniquote/internal/httpx/mw"
)

// Claims carries the caller's roles next to the registered claims. Subject is
// the user id.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

type signer struct {
	method jwt.SigningMethod
	sign   any
	verify any
}

func newSigner(jc config.JWTConfig) (*signer, error) {
	switch jc.Algo {
	case "HS256":
		if jc.HSSecret == "" {
			return nil, errors.New("JWT_HS_SECRET is not set")
		}
		key := []byte(jc.HSSecret)
		return &signer{method: jwt.SigningMethodHS256, sign: key, verify: key}, nil
	case "RS256":
		// verification alone is enough for a deployment behind an identity provider
		pub, err := rsaPublicKey(jc.RSPublicKey)
		if err != nil {
			return nil, err
		}
		s := &signer{method: jwt.SigningMethodRS256, verify: pub}
		if jc.RSPrivateKey != "" {
			if s.sign, err = rsaPrivateKey(jc.RSPrivateKey); err != nil {
				return nil, err
			}
		}
		return s, nil
	}
	return nil, fmt.Errorf("unsupported JWT_ALGO %q", jc.Algo)
}

func pemBlock(s, what string) ([]byte, error) {
	block, _ := pem.Decode([]byte(s))
	if block == nil {
		return nil, fmt.Errorf("invalid %s PEM", what)
	}
	return block.Bytes, nil
}

func rsaPrivateKey(s string) (*rsa.PrivateKey, error) {
	der, err := pemBlock(s, "RSA private key")
	if err != nil {
		return nil, err
	}
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	k, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, err
	}
	key, ok := k.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("private key is not RSA")
	}
	return key, nil
}

func rsaPublicKey(s string) (*rsa.PublicKey, error) {
	der, err := pemBlock(s, "RSA public key")
	if err != nil {
		return nil, err
	}
	k, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}
	key, ok := k.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not RSA")
	}
	return key, nil
}

// SignAccess issues an access token for userID. It returns the token and its id.
func SignAccess(cfg *config.Config, userID string, roles []string) (string, string, error) {
	s, err := newSigner(cfg.JWT)
	if err != nil {
		return "", "", err
	}
	if s.sign == nil {
		return "", "", errors.New("no signing key configured")
	}
	now := time.Now().UTC()
	jti := uuid.NewString()
	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWT.Issuer,
			Audience:  jwt.ClaimStrings{cfg.JWT.Audience},
			Subject:   userID,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.AccessMin) * time.Minute)),
		},
	}
	tok, err := jwt.NewWithClaims(s.method, claims).SignedString(s.sign)
	return tok, jti, err
}

// ParseAndValidate verifies signature, issuer, audience and expiry.
func ParseAndValidate(cfg *config.Config, token string) (*Claims, error) {
	s, err := newSigner(cfg.JWT)
	if err != nil {
		return nil, err
	}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithIssuer(cfg.JWT.Issuer),
		jwt.WithAudience(cfg.JWT.Audience),
		jwt.WithExpirationRequired(),
	)
	claims := &Claims{}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return s.verify, nil }); err != nil {
		return nil, err
	}
	return claims, nil
}

// Parser feeds verified tokens to mw.Authenticate. cfg is read per call so
// rotated keys apply without a restart.
func Parser(cfg func() *config.Config) mw.TokenParser {
	return func(token string) (mw.Identity, error) {
		claims, err := ParseAndValidate(cfg(), token)
		if err != nil {
			return mw.Identity{}, err
		}
		return mw.Identity{UserID: claims.Subject, Roles: claims.Roles, TokenID: claims.ID}, nil
	}
}
