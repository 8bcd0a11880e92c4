package domain

import (
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type OrderBy string

const (
	OrderByDate     OrderBy = "date"
	OrderByTitle    OrderBy = "title"
	OrderByState    OrderBy = "state"
	OrderByPriority OrderBy = "priority"
)

func (o OrderBy) IsValid() bool {
	switch o {
	case OrderByDate, OrderByTitle, OrderByState, OrderByPriority:
		return true
	default:
		return false
	}
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

func (d Direction) IsValid() bool {
	return d == Asc || d == Desc
}

// SortOptions describes how a list of actions is ordered for display.
type SortOptions struct {
	OrderBy          OrderBy
	Direction        Direction
	States           []State
	UseInstagramDate bool
}

// DefaultSort is the ordering used by the dashboard lists.
func DefaultSort() SortOptions {
	return SortOptions{OrderBy: OrderByDate, Direction: Asc}
}

// SortActions returns a new slice ordered by opts. Sorting by state without a
// state list returns the input order unchanged.
func SortActions(actions []Action, opts SortOptions) []Action {
	out := slices.Clone(actions)
	if out == nil {
		out = []Action{}
	}

	switch opts.OrderBy {
	case OrderByTitle:
		sortByTitle(out, opts.Direction)
	case OrderByState:
		if len(opts.States) == 0 {
			return out
		}
		ordered := slices.Clone(opts.States)
		slices.SortStableFunc(ordered, func(a, b State) int { return a.Order - b.Order })
		keys := make([]string, 0, len(ordered))
		for _, s := range ordered {
			keys = append(keys, s.Slug)
		}
		return bucketSort(out, keys, opts.Direction, func(a Action) string { return a.State })
	case OrderByPriority:
		keys := make([]string, 0, 3)
		for _, p := range AllPriorities() {
			keys = append(keys, string(p))
		}
		return bucketSort(out, keys, opts.Direction, func(a Action) string { return string(a.Priority) })
	default:
		sortByDate(out, opts.Direction, opts.UseInstagramDate)
	}
	return out
}

func sortByDate(actions []Action, dir Direction, useInstagramDate bool) {
	dateOf := func(a Action) time.Time {
		if useInstagramDate && IsInstagramFeed(a.Category, false) {
			return a.PublishDate()
		}
		return a.Date
	}
	slices.SortStableFunc(actions, func(a, b Action) int {
		at, bt := dateOf(a), dateOf(b)
		if dir == Desc {
			at, bt = bt, at
		}
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	})
}

func sortByTitle(actions []Action, dir Direction) {
	col := collate.New(language.BrazilianPortuguese)
	slices.SortStableFunc(actions, func(a, b Action) int {
		if dir == Desc {
			return col.CompareString(b.Title, a.Title)
		}
		return col.CompareString(a.Title, b.Title)
	})
}

// bucketSort groups actions by key following keys' order and concatenates the
// buckets. Each bucket keeps its input order; desc reverses only the bucket
// order. Actions matching no key are appended last, in input order.
func bucketSort(actions []Action, keys []string, dir Direction, keyOf func(Action) string) []Action {
	buckets := make(map[string][]Action, len(keys))
	for _, k := range keys {
		buckets[k] = nil
	}
	var rest []Action
	for _, a := range actions {
		k := keyOf(a)
		if _, ok := buckets[k]; ok {
			buckets[k] = append(buckets[k], a)
			continue
		}
		rest = append(rest, a)
	}

	order := slices.Clone(keys)
	if dir == Desc {
		slices.Reverse(order)
	}

	out := make([]Action, 0, len(actions))
	for _, k := range order {
		out = append(out, buckets[k]...)
		// a duplicate key in the list must not emit its bucket twice
		delete(buckets, k)
	}
	return append(out, rest...)
}
