package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"bussola/internal/core/domain"
	"bussola/internal/core/ports"
)

const actionColumns = `id, title, description, category, state, priority, date, instagram_date, time,
  partners, responsibles, topics, color, files, instagram_caption, instagram_content, instagram_files,
  archived, created_at, updated_at`

const insertActionQuery = `
INSERT INTO actions (` + actionColumns + `)
VALUES (:id, :title, :description, :category, :state, :priority, :date, :instagram_date, :time,
  :partners, :responsibles, :topics, :color, :files, :instagram_caption, :instagram_content, :instagram_files,
  :archived, :created_at, :updated_at)
`

const updateActionQuery = `
UPDATE actions SET
  title = :title,
  description = :description,
  category = :category,
  state = :state,
  priority = :priority,
  date = :date,
  instagram_date = :instagram_date,
  time = :time,
  partners = :partners,
  responsibles = :responsibles,
  topics = :topics,
  color = :color,
  files = :files,
  instagram_caption = :instagram_caption,
  instagram_content = :instagram_content,
  instagram_files = :instagram_files,
  archived = :archived,
  updated_at = :updated_at
WHERE id = :id
`

type ActionRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type actionRow struct {
	ID               string       `db:"id"`
	Title            string       `db:"title"`
	Description      string       `db:"description"`
	Category         string       `db:"category"`
	State            string       `db:"state"`
	Priority         string       `db:"priority"`
	Date             time.Time    `db:"date"`
	InstagramDate    sql.NullTime `db:"instagram_date"`
	Time             int          `db:"time"`
	Partners         string       `db:"partners"`
	Responsibles     string       `db:"responsibles"`
	Topics           string       `db:"topics"`
	Color            string       `db:"color"`
	Files            string       `db:"files"`
	InstagramCaption string       `db:"instagram_caption"`
	InstagramContent string       `db:"instagram_content"`
	InstagramFiles   string       `db:"instagram_files"`
	Archived         bool         `db:"archived"`
	CreatedAt        time.Time    `db:"created_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
}

var _ ports.ActionRepository = (*ActionRepository)(nil)

func NewActionRepository(db *sqlx.DB) *ActionRepository {
	return &ActionRepository{db: db, now: time.Now}
}

// Fetch runs the SQL-expressible part of filter and applies the list-column
// predicates (partner, responsible) in memory.
func (r *ActionRepository) Fetch(ctx context.Context, filter domain.ActionFilter) ([]domain.Action, error) {
	conditions := []string{"archived = ?"}
	args := []any{filter.Archived}

	if filter.From != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, filter.From.UTC())
	}
	if filter.To != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, filter.To.UTC())
	}
	if len(filter.ExcludeStates) > 0 {
		conditions = append(conditions, "state NOT IN (?)")
		args = append(args, filter.ExcludeStates)
	}
	if len(filter.ExcludeCategories) > 0 {
		conditions = append(conditions, "category NOT IN (?)")
		args = append(args, filter.ExcludeCategories)
	}

	query := "SELECT " + actionColumns + " FROM actions WHERE " + strings.Join(conditions, " AND ") + " ORDER BY date, id"
	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("build fetch query: %w", err)
	}

	var rows []actionRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	actions := make([]domain.Action, 0, len(rows))
	for _, row := range rows {
		action, err := mapActionRowToDomainAction(row)
		if err != nil {
			return nil, err
		}
		if domain.MatchesFilter(action, filter) {
			actions = append(actions, action)
		}
	}
	return actions, nil
}

func (r *ActionRepository) Get(ctx context.Context, id string) (domain.Action, error) {
	var row actionRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind("SELECT "+actionColumns+" FROM actions WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Action{}, domain.ErrActionNotFound
	}
	if err != nil {
		return domain.Action{}, err
	}
	return mapActionRowToDomainAction(row)
}

func (r *ActionRepository) Create(ctx context.Context, action domain.Action) error {
	row, err := mapDomainActionToRow(action)
	if err != nil {
		return err
	}
	if _, err := r.db.NamedExecContext(ctx, insertActionQuery, row); err != nil {
		return fmt.Errorf("insert action %s: %w", action.ID, err)
	}
	return nil
}

func (r *ActionRepository) Update(ctx context.Context, action domain.Action) error {
	row, err := mapDomainActionToRow(action)
	if err != nil {
		return err
	}
	result, err := r.db.NamedExecContext(ctx, updateActionQuery, row)
	if err != nil {
		return fmt.Errorf("update action %s: %w", action.ID, err)
	}
	return requireAffected(result)
}

// BulkUpdate writes every action in one transaction. A missing id rolls the
// whole batch back.
func (r *ActionRepository) BulkUpdate(ctx context.Context, actions []domain.Action) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, action := range actions {
		row, err := mapDomainActionToRow(action)
		if err != nil {
			return err
		}
		result, err := tx.NamedExecContext(ctx, updateActionQuery, row)
		if err != nil {
			return fmt.Errorf("update action %s: %w", action.ID, err)
		}
		if err := requireAffected(result); err != nil {
			return fmt.Errorf("update action %s: %w", action.ID, err)
		}
	}

	return tx.Commit()
}

func (r *ActionRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	result, err := r.db.ExecContext(ctx,
		r.db.Rebind("UPDATE actions SET archived = ?, updated_at = ? WHERE id = ?"),
		archived, r.now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireAffected(result)
}

func (r *ActionRepository) Destroy(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM sprints WHERE action_id = ?"), id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM actions WHERE id = ?"), id)
	if err != nil {
		return err
	}
	if err := requireAffected(result); err != nil {
		return err
	}
	return tx.Commit()
}

// requireAffected maps a write that matched no row to ErrActionNotFound. MySQL
// connections must set clientFoundRows so unchanged rows still count.
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrActionNotFound
	}
	return nil
}

func mapActionRowToDomainAction(row actionRow) (domain.Action, error) {
	action := domain.Action{
		ID:               row.ID,
		Title:            row.Title,
		Description:      row.Description,
		Category:         row.Category,
		State:            row.State,
		Priority:         domain.Priority(row.Priority),
		Date:             row.Date,
		Time:             row.Time,
		Color:            row.Color,
		InstagramCaption: row.InstagramCaption,
		InstagramContent: row.InstagramContent,
		Archived:         row.Archived,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}

	if row.InstagramDate.Valid {
		value := row.InstagramDate.Time
		action.InstagramDate = &value
	}

	lists := []struct {
		raw string
		dst *[]string
	}{
		{row.Partners, &action.Partners},
		{row.Responsibles, &action.Responsibles},
		{row.Topics, &action.Topics},
		{row.Files, &action.Files},
		{row.InstagramFiles, &action.InstagramFiles},
	}
	for _, l := range lists {
		values, err := decodeList(l.raw)
		if err != nil {
			return domain.Action{}, fmt.Errorf("decode action %s: %w", row.ID, err)
		}
		*l.dst = values
	}

	return action, nil
}

func mapDomainActionToRow(action domain.Action) (actionRow, error) {
	row := actionRow{
		ID:               action.ID,
		Title:            action.Title,
		Description:      action.Description,
		Category:         action.Category,
		State:            action.State,
		Priority:         string(action.Priority),
		Date:             action.Date.UTC(),
		Time:             action.Time,
		Color:            action.Color,
		InstagramCaption: action.InstagramCaption,
		InstagramContent: action.InstagramContent,
		Archived:         action.Archived,
		CreatedAt:        action.CreatedAt.UTC(),
		UpdatedAt:        action.UpdatedAt.UTC(),
	}
	if action.InstagramDate != nil {
		row.InstagramDate = sql.NullTime{Time: action.InstagramDate.UTC(), Valid: true}
	}

	var err error
	encode := func(values []string) string {
		if err != nil {
			return ""
		}
		var s string
		s, err = encodeList(values)
		return s
	}
	row.Partners = encode(action.Partners)
	row.Responsibles = encode(action.Responsibles)
	row.Topics = encode(action.Topics)
	row.Files = encode(action.Files)
	row.InstagramFiles = encode(action.InstagramFiles)
	if err != nil {
		return actionRow{}, fmt.Errorf("encode action %s: %w", action.ID, err)
	}
	return row, nil
}

func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	values := []string{}
	if strings.TrimSpace(raw) == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, err
	}
	return values, nil
}
