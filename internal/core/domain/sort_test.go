package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bussola/internal/core/domain"
)

func ids(actions []domain.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.ID)
	}
	return out
}

func titles(actions []domain.Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Title)
	}
	return out
}

func TestSortActions_ByState(t *testing.T) {
	states := []domain.State{
		{Slug: "done", Order: 3},
		{Slug: "idea", Order: 1},
		{Slug: "doing", Order: 2},
	}
	actions := []domain.Action{
		{ID: "1", State: "done"},
		{ID: "2", State: "idea"},
		{ID: "3", State: "doing"},
	}

	asc := domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByState, Direction: domain.Asc, States: states})
	desc := domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByState, Direction: domain.Desc, States: states})

	assert.Equal(t, []string{"2", "3", "1"}, ids(asc))
	assert.Equal(t, []string{"1", "3", "2"}, ids(desc))
	assert.Equal(t, []string{"1", "2", "3"}, ids(actions), "input must not be reordered")
}

func TestSortActions_ByStateKeepsBucketOrderAndUnknownLast(t *testing.T) {
	states := []domain.State{{Slug: "idea", Order: 1}, {Slug: "done", Order: 2}}
	actions := []domain.Action{
		{ID: "a", State: "done"},
		{ID: "b", State: "lost"},
		{ID: "c", State: "idea"},
		{ID: "d", State: "done"},
		{ID: "e", State: "idea"},
	}

	got := domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByState, Direction: domain.Desc, States: states})

	assert.Equal(t, []string{"a", "d", "c", "e", "b"}, ids(got))
}

func TestSortActions_ByStateWithoutStatesIsUnchanged(t *testing.T) {
	actions := []domain.Action{{ID: "2", State: "done"}, {ID: "1", State: "idea"}}

	got := domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByState})

	assert.Equal(t, []string{"2", "1"}, ids(got))
}

func TestSortActions_ByTitleUsesPortugueseCollation(t *testing.T) {
	actions := []domain.Action{{Title: "Ângela"}, {Title: "Ana"}, {Title: "Beto"}}

	assert.Equal(t, []string{"Ana", "Ângela", "Beto"}, titles(domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByTitle, Direction: domain.Asc})))
	assert.Equal(t, []string{"Beto", "Ângela", "Ana"}, titles(domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByTitle, Direction: domain.Desc})))
}

func TestSortActions_ByPriority(t *testing.T) {
	actions := []domain.Action{
		{ID: "1", Priority: domain.PriorityHigh},
		{ID: "2", Priority: domain.PriorityLow},
		{ID: "3", Priority: domain.PriorityMid},
		{ID: "4", Priority: domain.PriorityLow},
	}

	asc := domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByPriority, Direction: domain.Asc})
	desc := domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByPriority, Direction: domain.Desc})

	assert.Equal(t, []string{"2", "4", "3", "1"}, ids(asc))
	assert.Equal(t, []string{"1", "3", "2", "4"}, ids(desc))
}

func TestSortActions_ByDate(t *testing.T) {
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	late := base.Add(-time.Hour)
	actions := []domain.Action{
		{ID: "1", Category: "post", Date: base.Add(2 * time.Hour), InstagramDate: &late},
		{ID: "2", Category: "text", Date: base},
		{ID: "3", Category: "text", Date: base},
		{ID: "4", Category: "text", Date: base.Add(time.Hour)},
	}

	assert.Equal(t, []string{"2", "3", "4", "1"}, ids(domain.SortActions(actions, domain.DefaultSort())))
	assert.Equal(t, []string{"1", "4", "2", "3"}, ids(domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByDate, Direction: domain.Desc})))
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(domain.SortActions(actions, domain.SortOptions{OrderBy: domain.OrderByDate, Direction: domain.Asc, UseInstagramDate: true})))
}

func TestSortActions_NilInput(t *testing.T) {
	got := domain.SortActions(nil, domain.DefaultSort())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestOrderAndDirectionValidity(t *testing.T) {
	assert.True(t, domain.OrderByPriority.IsValid())
	assert.False(t, domain.OrderBy("color").IsValid())
	assert.True(t, domain.Desc.IsValid())
	assert.False(t, domain.Direction("up").IsValid())
}
