package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/samber/lo"

	"furniquote/internal/config"
)

type Client = es8.Client

func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// ProjectDoc is the searchable projection of a project.
type ProjectDoc struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	TypeID       string    `json:"type_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	FinalTotal   float64   `json:"final_total"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SearchResult is one page of hits.
type SearchResult struct {
	Total int64        `json:"total"`
	Hits  []ProjectDoc `json:"hits"`
}

// ProjectIndex maintains the project search index. A nil client turns every
// call into a no-op.
type ProjectIndex struct {
	es    *Client
	index string
}

func NewProjectIndex(es *Client, index string) *ProjectIndex {
	return &ProjectIndex{es: es, index: lo.Ternary(index != "", index, "projects")}
}

func (p *ProjectIndex) Enabled() bool { return p != nil && p.es != nil }

func (p *ProjectIndex) Index(ctx context.Context, doc ProjectDoc) error {
	if !p.Enabled() {
		return nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	res, err := p.es.Index(p.index, bytes.NewReader(b),
		p.es.Index.WithDocumentID(doc.ID),
		p.es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

func (p *ProjectIndex) Delete(ctx context.Context, id string) error {
	if !p.Enabled() {
		return nil
	}
	res, err := p.es.Delete(p.index, id, p.es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest && res.StatusCode != http.StatusNotFound {
		return fmtError(res)
	}
	return nil
}

// Search runs a full-text query restricted to ownerID's projects.
func (p *ProjectIndex) Search(ctx context.Context, ownerID, query string, from, size int) (SearchResult, error) {
	out := SearchResult{Hits: []ProjectDoc{}}
	if !p.Enabled() {
		return out, nil
	}
	b, err := json.Marshal(projectQuery(ownerID, query))
	if err != nil {
		return out, err
	}
	res, err := p.es.Search(
		p.es.Search.WithContext(ctx),
		p.es.Search.WithIndex(p.index),
		p.es.Search.WithBody(bytes.NewReader(b)),
		p.es.Search.WithFrom(from),
		p.es.Search.WithSize(size),
	)
	if err != nil {
		return out, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return out, fmtError(res)
	}
	var body struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source ProjectDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return out, fmt.Errorf("decode search response: %w", err)
	}
	out.Total = body.Hits.Total.Value
	for _, h := range body.Hits.Hits {
		out.Hits = append(out.Hits, h.Source)
	}
	return out, nil
}

func projectQuery(ownerID, query string) map[string]any {
	must := []any{}
	if q := strings.TrimSpace(query); q != "" {
		must = append(must, map[string]any{"multi_match": map[string]any{
			"query":  q,
			"fields": []string{"name^2", "customer_name", "type_id"},
		}})
	} else {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}
	return map[string]any{
		"query": map[string]any{"bool": map[string]any{
			"must":   must,
			"filter": []any{map[string]any{"term": map[string]any{"owner_id": ownerID}}},
		}},
		"sort": []any{map[string]any{"updated_at": "desc"}},
	}
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
