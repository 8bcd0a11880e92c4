package domain

import (
	"slices"
	"strings"
	"time"
)

// MinSearchLength is the query length from which Search starts filtering.
const MinSearchLength = 2

// Active drops archived actions.
func Active(actions []Action) []Action {
	return filterActions(actions, func(a Action) bool { return !a.Archived })
}

// Delayed returns actions whose do date is already past and that are not
// finished. A non-nil priority narrows the result to that priority.
func Delayed(actions []Action, now time.Time, priority *Priority) []Action {
	return filterActions(actions, func(a Action) bool {
		if !a.Date.Before(now) {
			return false
		}
		if a.State == StateFinished || a.State == StateArchived {
			return false
		}
		return priority == nil || a.Priority == *priority
	})
}

// Urgent returns high priority actions that are not finished.
func Urgent(actions []Action) []Action {
	return filterActions(actions, func(a Action) bool {
		return a.Priority == PriorityHigh && a.State != StateFinished
	})
}

// ForDay returns the actions scheduled on the calendar day of day, compared in
// day's location. In Instagram mode the publish date is matched instead.
func ForDay(actions []Action, day time.Time, useInstagramDate bool) []Action {
	loc := day.Location()
	y, m, d := day.Date()
	return filterActions(actions, func(a Action) bool {
		t := a.Date
		if useInstagramDate {
			if a.InstagramDate == nil {
				return false
			}
			t = *a.InstagramDate
		}
		ay, am, ad := t.In(loc).Date()
		return ay == y && am == m && ad == d
	})
}

// InstagramFeedActions returns feed actions, latest publish date first.
func InstagramFeedActions(actions []Action) []Action {
	feed := filterActions(actions, func(a Action) bool { return IsInstagramFeed(a.Category, false) })
	slices.SortStableFunc(feed, func(a, b Action) int {
		return b.PublishDate().Compare(a.PublishDate())
	})
	return feed
}

// Search matches query against titles, ignoring case. Queries shorter than
// MinSearchLength return every action.
func Search(actions []Action, query string) []Action {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSearchLength {
		return filterActions(actions, func(Action) bool { return true })
	}
	needle := strings.ToLower(query)
	return filterActions(actions, func(a Action) bool {
		return strings.Contains(strings.ToLower(a.Title), needle)
	})
}

func ByPartner(actions []Action, partner string) []Action {
	return filterActions(actions, func(a Action) bool { return slices.Contains(a.Partners, partner) })
}

func ByResponsible(actions []Action, person string) []Action {
	return filterActions(actions, func(a Action) bool { return slices.Contains(a.Responsibles, person) })
}

func ByCategories(actions []Action, categories ...string) []Action {
	return filterActions(actions, func(a Action) bool { return slices.Contains(categories, a.Category) })
}

func ByStates(actions []Action, states ...string) []Action {
	return filterActions(actions, func(a Action) bool { return slices.Contains(states, a.State) })
}

// MatchesFilter reports whether action passes a store-level filter. Stores
// that cannot express a filter in their query language use it to post-filter.
func MatchesFilter(a Action, f ActionFilter) bool {
	if a.Archived != f.Archived {
		return false
	}
	if f.Responsible != "" && !slices.Contains(a.Responsibles, f.Responsible) {
		return false
	}
	if f.Partner != "" && !slices.Contains(a.Partners, f.Partner) {
		return false
	}
	if f.From != nil && a.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && a.Date.After(*f.To) {
		return false
	}
	if slices.Contains(f.ExcludeStates, a.State) {
		return false
	}
	return !slices.Contains(f.ExcludeCategories, a.Category)
}

func filterActions(actions []Action, keep func(Action) bool) []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
