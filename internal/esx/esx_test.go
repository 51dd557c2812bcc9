package esx

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestProjectQuery_FiltersByOwner(t *testing.T) {
	b, _ := json.Marshal(projectQuery("u1", "  kitchen "))
	s := string(b)
	if !strings.Contains(s, `"term":{"owner_id":"u1"}`) {
		t.Fatalf("owner filter missing: %s", s)
	}
	if !strings.Contains(s, `"query":"kitchen"`) {
		t.Fatalf("query not trimmed: %s", s)
	}

	b, _ = json.Marshal(projectQuery("u1", ""))
	if !strings.Contains(string(b), "match_all") {
		t.Fatalf("blank query must match all: %s", b)
	}
}

func TestProjectIndex_DisabledIsNoop(t *testing.T) {
	idx := NewProjectIndex(nil, "")
	if idx.Enabled() {
		t.Fatalf("nil client must disable the index")
	}
	if err := idx.Index(context.Background(), ProjectDoc{ID: "p1"}); err != nil {
		t.Fatalf("index: %v", err)
	}
	res, err := idx.Search(context.Background(), "u1", "x", 0, 10)
	if err != nil || res.Hits == nil || res.Total != 0 {
		t.Fatalf("unexpected result: %+v %v", res, err)
	}
}
