// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package corpus holds the ordered table of PII categories: a name, a
// candidate pattern and an optional validator for each. The table is built
// once and never mutated, so it can be shared by concurrent scanners.
package corpus

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"pii-recognition/internal/detector"
)

// Group classifies categories for listings.
type Group string

const (
	GroupPayment     Group = "payment"
	GroupNationalID  Group = "national_id"
	GroupContact     Group = "contact"
	GroupNetwork     Group = "network"
	GroupVehicle     Group = "vehicle"
	GroupTravel      Group = "travel"
	GroupLocation    Group = "location"
	GroupDemographic Group = "demographic"
	GroupIdentity    Group = "identity"
)

// Category is one entry of the corpus.
type Category struct {
	Name        string
	Pattern     *regexp.Regexp
	Validator   detector.Validator // nil for structural-only categories
	Description string
	Group       Group

	// Bounded drops matches that touch a letter, digit or underscore on
	// either side. For patterns RE2 cannot anchor to token edges.
	Bounded bool
}

// Structural reports whether matches are accepted without validation.
func (c Category) Structural() bool {
	return c.Validator == nil
}

// Corpus is an immutable ordered set of categories with unique names.
type Corpus struct {
	categories []Category
	index      map[string]int
}

// New builds a corpus from categories in the given order.
func New(categories ...Category) (*Corpus, error) {
	c := &Corpus{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("category with pattern %v has no name", cat.Pattern)
		}
		if cat.Pattern == nil {
			return nil, fmt.Errorf("category %s has no pattern", cat.Name)
		}
		if _, dup := c.index[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate category name: %s", cat.Name)
		}
		c.index[cat.Name] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// Categories returns the categories in corpus order. The slice is a copy.
func (c *Corpus) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of categories.
func (c *Corpus) Len() int {
	return len(c.categories)
}

// Names returns the category names in corpus order.
func (c *Corpus) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Get looks up a category by name.
func (c *Corpus) Get(name string) (Category, bool) {
	i, ok := c.index[name]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Structural returns the categories accepted on pattern alone.
func (c *Corpus) Structural() []Category {
	return c.filter(func(cat Category) bool { return cat.Structural() })
}

// Verified returns the categories that carry a validator.
func (c *Corpus) Verified() []Category {
	return c.filter(func(cat Category) bool { return !cat.Structural() })
}

func (c *Corpus) filter(keep func(Category) bool) []Category {
	var out []Category
	for _, cat := range c.categories {
		if keep(cat) {
			out = append(out, cat)
		}
	}
	return out
}

// Select returns a corpus restricted to names, keeping corpus order. An
// empty list or "all" selects everything. Unknown names are an error.
func (c *Corpus) Select(names []string) (*Corpus, error) {
	if len(names) == 0 || (len(names) == 1 && strings.EqualFold(names[0], "all")) {
		return c, nil
	}

	wanted := make(map[string]bool, len(names))
	var unknown []string
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := c.index[name]; !ok {
			unknown = append(unknown, name)
			continue
		}
		wanted[name] = true
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("unknown categories: %s", strings.Join(unknown, ", "))
	}

	return New(c.filter(func(cat Category) bool { return wanted[cat.Name] })...)
}

// ParseNames splits a comma separated category list.
func ParseNames(list string) []string {
	var names []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
