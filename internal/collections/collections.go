// Package collections serves the read-only showcase of furniture collections.
package collections

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed collections.yaml
var collectionsYAML []byte

type Image struct {
	ID      string `json:"id" yaml:"id"`
	URL     string `json:"url" yaml:"url"`
	Alt     string `json:"alt" yaml:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption"`
}

type Collection struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Slug             string   `json:"slug" yaml:"slug"`
	Description      string   `json:"description" yaml:"description"`
	ShortDescription string   `json:"short_description" yaml:"short_description"`
	HeroImage        string   `json:"hero_image" yaml:"hero_image"`
	Images           []Image  `json:"images" yaml:"images"`
	Features         []string `json:"features" yaml:"features"`
	PriceRange       string   `json:"price_range" yaml:"price_range"`
	DeliveryTime     string   `json:"delivery_time" yaml:"delivery_time"`
	Materials        []string `json:"materials" yaml:"materials"`
	Customizable     bool     `json:"customizable" yaml:"customizable"`
	Popular          bool     `json:"popular" yaml:"popular"`
}

var (
	loadOnce sync.Once
	all      []Collection
	loadErr  error
)

func load() ([]Collection, error) {
	loadOnce.Do(func() {
		var doc struct {
			Collections []Collection `yaml:"collections"`
		}
		if err := yaml.Unmarshal(collectionsYAML, &doc); err != nil {
			loadErr = fmt.Errorf("parse collections: %w", err)
			return
		}
		all = doc.Collections
	})
	return all, loadErr
}

// List returns collections in showcase order, optionally only popular ones.
func List(popularOnly bool) ([]Collection, error) {
	cs, err := load()
	if err != nil {
		return nil, err
	}
	if !popularOnly {
		return cs, nil
	}
	return lo.Filter(cs, func(c Collection, _ int) bool { return c.Popular }), nil
}

// BySlug finds one collection.
func BySlug(slug string) (Collection, bool, error) {
	cs, err := load()
	if err != nil {
		return Collection{}, false, err
	}
	c, ok := lo.Find(cs, func(c Collection) bool { return c.Slug == slug })
	return c, ok, nil
}
