// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"pii-recognition/internal/corpus"
)

// groupOrder is the order groups are listed in
var groupOrder = []corpus.Group{
	corpus.GroupPayment,
	corpus.GroupNationalID,
	corpus.GroupContact,
	corpus.GroupNetwork,
	corpus.GroupVehicle,
	corpus.GroupTravel,
	corpus.GroupLocation,
	corpus.GroupDemographic,
	corpus.GroupIdentity,
}

// System renders help content for the categories of a corpus
type System struct {
	corpus *corpus.Corpus
	colors map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(c *corpus.Corpus, noColor bool) *System {
	colors := map[string]*color.Color{
		"title":    color.New(color.FgWhite, color.Bold),
		"header":   color.New(color.FgBlue, color.Bold),
		"item":     color.New(color.FgCyan),
		"positive": color.New(color.FgGreen),
		"warning":  color.New(color.FgYellow),
	}
	if noColor {
		for _, col := range colors {
			col.DisableColor()
		}
	}
	return &System{corpus: c, colors: colors}
}

// ShowChecksList writes every category grouped by kind, in corpus order
// within each group.
func (h *System) ShowChecksList(w io.Writer) {
	h.colors["title"].Fprintf(w, "Available checks (%d)\n", h.corpus.Len())

	byGroup := make(map[corpus.Group][]corpus.Category)
	for _, cat := range h.corpus.Categories() {
		byGroup[cat.Group] = append(byGroup[cat.Group], cat)
	}

	for _, group := range groupOrder {
		cats := byGroup[group]
		if len(cats) == 0 {
			continue
		}
		fmt.Fprintln(w)
		h.colors["header"].Fprintln(w, strings.ToUpper(string(group)))

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, cat := range cats {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", h.colors["item"].Sprint(cat.Name), h.kind(cat), cat.Description)
		}
		tw.Flush()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use --checks name1,name2 to run a subset, or 'checks <name>' for details.")
}

// ShowCheckHelp writes the details of a single category
func (h *System) ShowCheckHelp(w io.Writer, name string) error {
	cat, ok := h.corpus.Get(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return fmt.Errorf("unknown check %q", name)
	}

	h.colors["title"].Fprintln(w, cat.Name)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Description\t%s\n", cat.Description)
	fmt.Fprintf(tw, "  Group\t%s\n", cat.Group)
	fmt.Fprintf(tw, "  Verification\t%s\n", h.kind(cat))
	fmt.Fprintf(tw, "  Pattern\t%s\n", cat.Pattern.String())
	return tw.Flush()
}

// kind labels a category as validated or pattern-only
func (h *System) kind(cat corpus.Category) string {
	if cat.Structural() {
		return h.colors["warning"].Sprint("pattern")
	}
	return h.colors["positive"].Sprint("validated")
}
