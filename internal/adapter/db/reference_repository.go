package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
)

// ReferenceRepository reads the lookup tables. Nothing here writes.
type ReferenceRepository struct {
	db *sqlx.DB
}

var _ ports.ReferenceRepository = (*ReferenceRepository)(nil)

func NewReferenceRepository(db *sqlx.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ListStates(ctx context.Context) ([]domain.State, error) {
	var rows []struct {
		Slug     string `db:"slug"`
		Title    string `db:"title"`
		Color    string `db:"color"`
		Position int    `db:"position"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT slug, title, color, position FROM states ORDER BY position"); err != nil {
		return nil, err
	}

	states := make([]domain.State, 0, len(rows))
	for _, row := range rows {
		states = append(states, domain.State{Slug: row.Slug, Title: row.Title, Color: row.Color, Order: row.Position})
	}
	return states, nil
}

func (r *ReferenceRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var rows []struct {
		Slug     string `db:"slug"`
		Title    string `db:"title"`
		Position int    `db:"position"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT slug, title, position FROM categories ORDER BY position"); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{Slug: row.Slug, Title: row.Title, Order: row.Position})
	}
	return categories, nil
}

func (r *ReferenceRepository) ListPartners(ctx context.Context) ([]domain.Partner, error) {
	var rows []struct {
		Slug  string `db:"slug"`
		Title string `db:"title"`
		Users string `db:"users"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT slug, title, users FROM partners ORDER BY title"); err != nil {
		return nil, err
	}

	partners := make([]domain.Partner, 0, len(rows))
	for _, row := range rows {
		users, err := decodeList(row.Users)
		if err != nil {
			return nil, fmt.Errorf("decode partner %s: %w", row.Slug, err)
		}
		partners = append(partners, domain.Partner{Slug: row.Slug, Title: row.Title, Users: users})
	}
	return partners, nil
}

func (r *ReferenceRepository) ListPeople(ctx context.Context) ([]domain.Person, error) {
	var rows []struct {
		ID       string `db:"id"`
		UserID   string `db:"user_id"`
		Name     string `db:"name"`
		Initials string `db:"initials"`
		Admin    bool   `db:"admin"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT id, user_id, name, initials, admin FROM people ORDER BY name"); err != nil {
		return nil, err
	}

	people := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, domain.Person{
			ID:       row.ID,
			UserID:   row.UserID,
			Name:     row.Name,
			Initials: row.Initials,
			Admin:    row.Admin,
		})
	}
	return people, nil
}
