package domain_test

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"bussola/internal/core/domain"
)

var feedCategories = []string{"post", "reels", "carousel", "stories"}

func drawDatePair(rt *rapid.T) (time.Time, time.Time) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	do := base.Add(time.Duration(rapid.IntRange(0, 60*24*365).Draw(rt, "do_offset")) * time.Minute)
	publish := do.Add(time.Duration(rapid.IntRange(-600, 600).Draw(rt, "gap")) * time.Minute)
	return do, publish
}

// TestPropertyPublishNotAfterDoIsInvalid verifies that a feed action whose
// publish date does not follow its do date is never valid.
func TestPropertyPublishNotAfterDoIsInvalid(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		do, publish := drawDatePair(rt)
		if publish.After(do) {
			publish = do.Add(-time.Duration(rapid.IntRange(0, 600).Draw(rt, "back")) * time.Minute)
		}
		category := rapid.SampledFrom(feedCategories).Draw(rt, "category")
		required := rapid.IntRange(0, 240).Draw(rt, "time")

		got := domain.ValidateActionDates(domain.FormatDate(do), domain.FormatDate(publish), required, category, utcOptions())
		if got.IsValid {
			rt.Fatalf("%s -> %s (%s, %d min) reported valid", domain.FormatDate(do), domain.FormatDate(publish), category, required)
		}
	})
}

// TestPropertyGapRule verifies that an ordered pair is valid exactly when the
// gap covers max(time, minTimeBetween, 1) minutes.
func TestPropertyGapRule(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
		gap := rapid.IntRange(1, 600).Draw(rt, "gap")
		required := rapid.IntRange(0, 300).Draw(rt, "time")
		minBetween := rapid.IntRange(0, 120).Draw(rt, "min_between")
		category := rapid.SampledFrom(feedCategories).Draw(rt, "category")

		opts := utcOptions()
		opts.MinTimeBetween = minBetween
		got := domain.ValidateActionDates(
			domain.FormatDate(base),
			domain.FormatDate(base.Add(time.Duration(gap)*time.Minute)),
			required, category, opts,
		)

		want := gap >= max(required, minBetween, 1)
		if got.IsValid != want {
			rt.Fatalf("gap %d, time %d, min %d: valid = %v, want %v", gap, required, minBetween, got.IsValid, want)
		}
	})
}

// TestPropertyAutoCorrectIdempotent verifies that correcting a corrected pair
// changes nothing.
func TestPropertyAutoCorrectIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		do, publish := drawDatePair(rt)
		category := rapid.SampledFrom(append([]string{"text", "meeting"}, feedCategories...)).Draw(rt, "category")
		required := rapid.IntRange(0, 240).Draw(rt, "time")

		opts := utcOptions()
		opts.MinTimeBetween = rapid.IntRange(0, 90).Draw(rt, "min_between")

		first, err := domain.AutoCorrectActionDates(domain.FormatDate(do), domain.FormatDate(publish), required, category, opts)
		if err != nil {
			rt.Fatalf("first pass: %v", err)
		}
		second, err := domain.AutoCorrectActionDates(first.Date, first.InstagramDate, required, category, opts)
		if err != nil {
			rt.Fatalf("second pass: %v", err)
		}
		if first != second {
			rt.Fatalf("not idempotent: %+v then %+v", first, second)
		}

		check := domain.ValidateActionDates(first.Date, first.InstagramDate, required, category, opts)
		if !check.IsValid {
			rt.Fatalf("corrected pair %+v still invalid: %+v", first, check.Issues)
		}
	})
}
