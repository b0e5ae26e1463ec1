package sheetdb

import (
	"context"
	"database/sql"

	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/pkg/errors"
)

// ListSentences returns every sentence in insertion order.
func (d *DB) ListSentences(ctx context.Context) ([]*model.Sentence, error) {
	query := "SELECT id, book_id, text, page, created_at FROM sentences ORDER BY rowid"
	rows, err := d.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.Sentence, 0)
	for rows.Next() {
		var s model.Sentence
		var page sql.NullInt64
		var createdAt string
		if err := rows.Scan(&s.ID, &s.BookID, &s.Text, &page, &createdAt); err != nil {
			return nil, err
		}
		if page.Valid && page.Int64 > 0 {
			p := int(page.Int64)
			s.Page = &p
		}
		s.CreatedAt = parseTime(createdAt)
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (d *DB) AddSentence(ctx context.Context, s *model.Sentence) error {
	if s.ID == "" {
		return &model.ValidationError{Field: "id", Message: "sentence id is empty"}
	}
	var page sql.NullInt64
	if s.Page != nil {
		page = sql.NullInt64{Int64: int64(*s.Page), Valid: true}
	}
	stmt := `
		INSERT INTO sentences (id, book_id, text, page, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := d.ExecContext(ctx, stmt, s.ID, s.BookID, s.Text, page, formatTime(s.CreatedAt)); err != nil {
		return errors.Wrapf(err, "failed to insert sentence %s", s.ID)
	}
	return nil
}

// DeleteSentence fails with a NotFoundError when no sentence has id.
func (d *DB) DeleteSentence(ctx context.Context, id string) error {
	if id == "" {
		return &model.ValidationError{Field: "sentenceId", Message: "sentence id is empty"}
	}
	res, err := d.ExecContext(ctx, "DELETE FROM sentences WHERE id = ?", id)
	if err != nil {
		return errors.Wrap(err, "failed to delete sentence")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return &model.NotFoundError{Kind: "sentence", ID: id}
	}
	return nil
}
