package auth

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"furniquote/internal/config"
	"furniquote/internal/httpx/kit/testutil"
	"furniquote/internal/httpx/mw"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Algo = "HS256"
	cfg.JWT.HSSecret = "test-secret"
	cfg.JWT.Issuer = "furniquote"
	cfg.JWT.Audience = "furniquote-api"
	cfg.JWT.AccessMin = 5
	return cfg
}

func TestSignAndParse(t *testing.T) {
	cfg := testConfig()
	tok, jti, err := SignAccess(cfg, "u1", []string{"admin"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := ParseAndValidate(cfg, tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "u1" || claims.ID != jti || len(claims.Roles) != 1 || claims.Roles[0] != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	id, err := Parser(func() *config.Config { return cfg })(tok)
	if err != nil || id.UserID != "u1" || id.TokenID != jti {
		t.Fatalf("identity: %+v err=%v", id, err)
	}

	other := testConfig()
	other.JWT.Audience = "someone-else"
	if _, err := ParseAndValidate(other, tok); err == nil {
		t.Fatalf("foreign audience must be rejected")
	}
	other = testConfig()
	other.JWT.HSSecret = "rotated"
	if _, err := ParseAndValidate(other, tok); err == nil {
		t.Fatalf("wrong key must be rejected")
	}
	if _, err := newSigner(config.JWTConfig{}); err == nil {
		t.Fatalf("empty algo must fail")
	}
}

func TestRS256(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	cfg := testConfig()
	cfg.JWT.Algo = "RS256"
	cfg.JWT.RSPrivateKey = string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))
	cfg.JWT.RSPublicKey = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER}))

	tok, _, err := SignAccess(cfg, "u2", nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	verifyOnly := *cfg
	verifyOnly.JWT.RSPrivateKey = ""
	claims, err := ParseAndValidate(&verifyOnly, tok)
	if err != nil || claims.Subject != "u2" {
		t.Fatalf("parse: %+v err=%v", claims, err)
	}
	if _, _, err := SignAccess(&verifyOnly, "u2", nil); err == nil {
		t.Fatalf("signing without a private key must fail")
	}

	hs := testConfig()
	if _, err := ParseAndValidate(hs, tok); err == nil {
		t.Fatalf("RS256 token must not verify as HS256")
	}
}

func TestDevTokenFlow(t *testing.T) {
	cfg := testConfig()
	get := func() *config.Config { return cfg }
	app := testutil.NewApp(
		func(app *fiber.App) { app.Use(mw.Authenticate(Parser(get))) },
		func(app *fiber.App) { app.Post("/dev-token", DevTokenHandler(get)) },
		func(app *fiber.App) {
			app.Get("/me", mw.RequireUser(), func(c *fiber.Ctx) error { return meHandler(c) })
		},
	)

	res, err := app.Test(httptest.NewRequest(http.MethodPost, "/dev-token", bytes.NewReader([]byte(`{}`))))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing user id: status=%d", res.StatusCode)
	}

	req := httptest.NewRequest(http.MethodPost, "/dev-token", bytes.NewReader([]byte(`{"user_id":"u7"}`)))
	req.Header.Set("Content-Type", "application/json")
	res, err = app.Test(req)
	if err != nil || res.StatusCode != http.StatusCreated {
		t.Fatalf("dev token: %v status=%d", err, res.StatusCode)
	}
	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Data.AccessToken)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("me: status=%d", res.StatusCode)
	}
	var me struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&me); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if me.Data["user_id"] != "u7" {
		t.Fatalf("unexpected user: %v", me.Data)
	}
}

func meHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": fiber.Map{"user_id": mw.UserID(c)}})
}
