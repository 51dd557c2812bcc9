package storagex

import (
	"context"
	"errors"
	"testing"

	"furniquote/internal/config"
)

func TestContentTypeForKey(t *testing.T) {
	cases := map[string]string{
		"projects/p1/a.PNG":      "image/png",
		"projects/p1/b.jpeg?x=1": "image/jpeg",
		"c.webp":                 "image/webp",
		"notes.txt":              "",
		"":                       "",
	}
	for in, want := range cases {
		if got := ContentTypeForKey(in); got != want {
			t.Fatalf("ContentTypeForKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPublicURL(t *testing.T) {
	if got := publicURL("b", "cdn.example.com", "", "k.png"); got != "https://cdn.example.com/k.png" {
		t.Fatalf("cdn url = %q", got)
	}
	if got := publicURL("b", "", "http://localhost:4443/", "k.png"); got != "http://localhost:4443/b/k.png" {
		t.Fatalf("emulator url = %q", got)
	}
	if got := publicURL("b", "", "", "k.png"); got != "https://storage.googleapis.com/b/k.png" {
		t.Fatalf("default url = %q", got)
	}
}

func TestOpen_ModeChecks(t *testing.T) {
	cfg := &config.Config{}
	if _, _, err := Open(context.Background(), cfg); !errors.Is(err, ErrDisabled) {
		t.Fatalf("blank mode must be disabled, got %v", err)
	}
	cfg.Storage.Mode = "gcs"
	if _, _, err := Open(context.Background(), cfg); err == nil {
		t.Fatalf("missing bucket must fail")
	}
	cfg.Storage.Bucket = "photos"
	cfg.Storage.Mode = "s3"
	if _, _, err := Open(context.Background(), cfg); err == nil {
		t.Fatalf("unknown mode must fail")
	}
	cfg.Storage.Mode = "gcs_emulator"
	if _, _, err := Open(context.Background(), cfg); err == nil {
		t.Fatalf("emulator mode without host must fail")
	}
}
