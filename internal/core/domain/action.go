package domain

import "time"

type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityMid  Priority = "mid"
	PriorityHigh Priority = "high"
)

// AllPriorities returns the priorities from lowest to highest.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMid, PriorityHigh}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMid, PriorityHigh:
		return true
	default:
		return false
	}
}

// Well-known state slugs. The full ordered list lives in the states table.
const (
	StateIdea     = "idea"
	StateDo       = "do"
	StateDoing    = "doing"
	StateReview   = "review"
	StateApproved = "approved"
	StateDone     = "done"
	StateFinished = "finished"
	StateArchived = "archived"
)

// Action is a schedulable piece of content work for one or more partners.
type Action struct {
	ID               string
	Title            string
	Description      string
	Category         string
	State            string
	Priority         Priority
	Date             time.Time
	InstagramDate    *time.Time
	Time             int
	Partners         []string
	Responsibles     []string
	Topics           []string
	Color            string
	Files            []string
	InstagramCaption string
	InstagramContent string
	InstagramFiles   []string
	Archived         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PublishDate returns the Instagram date when set, otherwise the do date.
func (a Action) PublishDate() time.Time {
	if a.InstagramDate != nil {
		return *a.InstagramDate
	}
	return a.Date
}

// Clone returns a deep copy so callers can mutate list fields safely.
func (a Action) Clone() Action {
	c := a
	c.Partners = cloneStrings(a.Partners)
	c.Responsibles = cloneStrings(a.Responsibles)
	c.Topics = cloneStrings(a.Topics)
	c.Files = cloneStrings(a.Files)
	c.InstagramFiles = cloneStrings(a.InstagramFiles)
	if a.InstagramDate != nil {
		value := *a.InstagramDate
		c.InstagramDate = &value
	}
	return c
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Sprint pulls an action into a user's short-term queue.
type Sprint struct {
	ActionID  string
	UserID    string
	CreatedAt time.Time
}

type State struct {
	Slug  string
	Title string
	Color string
	Order int
}

type Category struct {
	Slug  string
	Title string
	Order int
}

type Partner struct {
	Slug  string
	Title string
	Users []string
}

type Person struct {
	ID       string
	UserID   string
	Name     string
	Initials string
	Admin    bool
}

type Topic struct {
	ID      string
	Partner string
	Title   string
	Color   string
}

// ActionFilter narrows a fetch from the action store.
type ActionFilter struct {
	Archived          bool
	Responsible       string
	Partner           string
	From              *time.Time
	To                *time.Time
	ExcludeStates     []string
	ExcludeCategories []string
}

// ActionPatch carries the fields of a partial update. Nil means unchanged.
type ActionPatch struct {
	Title            *string
	Description      *string
	Category         *string
	State            *string
	Priority         *Priority
	Date             *time.Time
	InstagramDate    *time.Time
	InstagramDateSet bool
	Time             *int
	Partners         []string
	Responsibles     []string
	Topics           []string
	Color            *string
	InstagramCaption *string
	InstagramContent *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ActionPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.State == nil &&
		p.Priority == nil && p.Date == nil && !p.InstagramDateSet && p.Time == nil &&
		p.Partners == nil && p.Responsibles == nil && p.Topics == nil && p.Color == nil &&
		p.InstagramCaption == nil && p.InstagramContent == nil
}

// Apply returns a copy of action with the patch applied.
func (p ActionPatch) Apply(action Action) Action {
	out := action.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.State != nil {
		out.State = *p.State
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.InstagramDateSet {
		if p.InstagramDate == nil {
			out.InstagramDate = nil
		} else {
			value := *p.InstagramDate
			out.InstagramDate = &value
		}
	}
	if p.Time != nil {
		out.Time = *p.Time
	}
	if p.Partners != nil {
		out.Partners = cloneStrings(p.Partners)
	}
	if p.Responsibles != nil {
		out.Responsibles = cloneStrings(p.Responsibles)
	}
	if p.Topics != nil {
		out.Topics = cloneStrings(p.Topics)
	}
	if p.Color != nil {
		out.Color = *p.Color
	}
	if p.InstagramCaption != nil {
		out.InstagramCaption = *p.InstagramCaption
	}
	if p.InstagramContent != nil {
		out.InstagramContent = *p.InstagramContent
	}
	return out
}

// TouchesDates reports whether the patch can affect the date invariant.
func (p ActionPatch) TouchesDates() bool {
	return p.Date != nil || p.InstagramDateSet || p.Time != nil || p.Category != nil
}
