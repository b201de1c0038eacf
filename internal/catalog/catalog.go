// Package catalog filters and orders the public course and event lists.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/raasacademy2024-maker/RASS-sub002/internal/domain"
	"github.com/raasacademy2024-maker/RASS-sub002/internal/errdefs"
)

type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortTitle      SortKey = "title"
	SortPrice      SortKey = "price"
	SortPriceDesc  SortKey = "price-desc"
)

// ParseSort accepts an empty string as popularity.
func ParseSort(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case "":
		return SortPopularity, nil
	case SortPopularity, SortTitle, SortPrice, SortPriceDesc:
		return key, nil
	default:
		return "", fmt.Errorf("%w: unknown sort %q", errdefs.ErrInvalidArgument, s)
	}
}

type Filter struct {
	Search        string
	Category      string
	PublishedOnly bool
	Sort          SortKey
}

// Apply returns the matching courses in a new slice; the input is untouched.
func Apply(courses []domain.Course, f Filter) []domain.Course {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if f.PublishedOnly && !c.IsPublished {
			continue
		}
		if f.Category != "" && !strings.EqualFold(c.Category, f.Category) {
			continue
		}
		if search != "" && !matches(c, search) {
			continue
		}
		out = append(out, c)
	}

	switch f.Sort {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
		})
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].EnrollmentCount > out[j].EnrollmentCount })
	}
	return out
}

func matches(c domain.Course, search string) bool {
	return strings.Contains(strings.ToLower(c.Title), search) ||
		strings.Contains(strings.ToLower(c.Description), search) ||
		strings.Contains(strings.ToLower(c.Category), search)
}

// Categories lists the distinct non-empty categories in first-seen order.
func Categories(courses []domain.Course) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range courses {
		if c.Category == "" {
			continue
		}
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		out = append(out, c.Category)
	}
	return out
}
