package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
)

var ErrInvalidActionQuery = errors.New("invalid action query")

// BuildActionFilter reads the store filter from the query string.
func BuildActionFilter(values url.Values, loc *time.Location) (domain.ActionFilter, error) {
	filter := domain.ActionFilter{
		Partner:           strings.TrimSpace(values.Get("partner")),
		Responsible:       strings.TrimSpace(values.Get("responsible")),
		ExcludeStates:     listParam(values, "exclude_state"),
		ExcludeCategories: listParam(values, "exclude_category"),
	}

	archived, err := boolParam(values, "archived")
	if err != nil {
		return domain.ActionFilter{}, err
	}
	filter.Archived = archived

	if filter.From, err = dateParam(values, "from", loc); err != nil {
		return domain.ActionFilter{}, err
	}
	if filter.To, err = dateParam(values, "to", loc); err != nil {
		return domain.ActionFilter{}, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return domain.ActionFilter{}, ErrInvalidActionQuery
	}
	return filter, nil
}

// BuildSortOptions reads order_by, direction and instagram_date. Missing
// values fall back to the date ascending default.
func BuildSortOptions(values url.Values) (domain.SortOptions, error) {
	opts := domain.DefaultSort()
	if v := values.Get("order_by"); v != "" {
		opts.OrderBy = domain.OrderBy(v)
		if !opts.OrderBy.IsValid() {
			return domain.SortOptions{}, ErrInvalidActionQuery
		}
	}
	if v := values.Get("direction"); v != "" {
		opts.Direction = domain.Direction(v)
		if !opts.Direction.IsValid() {
			return domain.SortOptions{}, ErrInvalidActionQuery
		}
	}
	useInstagramDate, err := boolParam(values, "instagram_date")
	if err != nil {
		return domain.SortOptions{}, err
	}
	opts.UseInstagramDate = useInstagramDate
	return opts, nil
}

func BuildActionQuery(values url.Values, loc *time.Location) (ports.ActionQuery, error) {
	filter, err := BuildActionFilter(values, loc)
	if err != nil {
		return ports.ActionQuery{}, err
	}
	order, err := BuildSortOptions(values)
	if err != nil {
		return ports.ActionQuery{}, err
	}
	return ports.ActionQuery{
		Filter:     filter,
		Search:     values.Get("q"),
		Categories: listParam(values, "category"),
		States:     listParam(values, "state"),
		Sort:       order,
	}, nil
}

// PriorityParam reads an optional priority filter.
func PriorityParam(values url.Values) (*domain.Priority, error) {
	v := values.Get("priority")
	if v == "" {
		return nil, nil
	}
	p := domain.Priority(v)
	if !p.IsValid() {
		return nil, ErrInvalidActionQuery
	}
	return &p, nil
}

func boolParam(values url.Values, key string) (bool, error) {
	v := values.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, ErrInvalidActionQuery
	}
	return b, nil
}

func dateParam(values url.Values, key string, loc *time.Location) (*time.Time, error) {
	v := values.Get(key)
	if v == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(v, loc)
	if err != nil {
		return nil, ErrInvalidActionQuery
	}
	return &t, nil
}

// listParam accepts both repeated keys and comma separated values.
func listParam(values url.Values, key string) []string {
	var out []string
	for _, v := range values[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
