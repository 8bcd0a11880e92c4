package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bussola/internal/core/domain"
)

func TestAction_PublishDate(t *testing.T) {
	do := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	publish := do.Add(time.Hour)

	assert.Equal(t, do, domain.Action{Date: do}.PublishDate())
	assert.Equal(t, publish, domain.Action{Date: do, InstagramDate: &publish}.PublishDate())
}

func TestAction_CloneIsDeep(t *testing.T) {
	publish := time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)
	original := domain.Action{ID: "a", Partners: []string{"acme"}, InstagramDate: &publish}

	c := original.Clone()
	c.Partners[0] = "globex"
	*c.InstagramDate = publish.Add(time.Hour)

	assert.Equal(t, "acme", original.Partners[0])
	assert.Equal(t, publish, *original.InstagramDate)
}

func TestPriority_IsValid(t *testing.T) {
	for _, p := range domain.AllPriorities() {
		assert.True(t, p.IsValid())
	}
	assert.False(t, domain.Priority("urgent").IsValid())
	assert.False(t, domain.Priority("").IsValid())
}

func TestActionPatch_Apply(t *testing.T) {
	do := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	publish := do.Add(time.Hour)
	action := domain.Action{
		ID:            "a",
		Title:         "Launch",
		State:         "do",
		Priority:      domain.PriorityMid,
		Date:          do,
		InstagramDate: &publish,
		Partners:      []string{"acme"},
	}

	title := "Relaunch"
	high := domain.PriorityHigh
	patch := domain.ActionPatch{
		Title:            &title,
		Priority:         &high,
		InstagramDateSet: true,
		Responsibles:     []string{"u1"},
	}

	got := patch.Apply(action)

	assert.Equal(t, "Relaunch", got.Title)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Nil(t, got.InstagramDate)
	assert.Equal(t, []string{"u1"}, got.Responsibles)
	assert.Equal(t, []string{"acme"}, got.Partners)
	assert.Equal(t, "do", got.State)
	require.NotNil(t, action.InstagramDate, "source action must not change")
	assert.Equal(t, "Launch", action.Title)
}

func TestActionPatch_IsEmptyAndTouchesDates(t *testing.T) {
	assert.True(t, domain.ActionPatch{}.IsEmpty())
	assert.False(t, domain.ActionPatch{}.TouchesDates())

	state := "done"
	statePatch := domain.ActionPatch{State: &state}
	assert.False(t, statePatch.IsEmpty())
	assert.False(t, statePatch.TouchesDates())

	minutes := 30
	assert.True(t, domain.ActionPatch{Time: &minutes}.TouchesDates())
	assert.True(t, domain.ActionPatch{InstagramDateSet: true}.TouchesDates())
	assert.False(t, domain.ActionPatch{InstagramDateSet: true}.IsEmpty())
}
