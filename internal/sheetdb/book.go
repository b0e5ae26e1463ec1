package sheetdb

import (
	"context"
	"database/sql"
	"time"

	"github.com/herhimstory-source/Reading-Log/internal/model"
	"github.com/pkg/errors"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ListBooks returns every book in insertion order.
func (d *DB) ListBooks(ctx context.Context) ([]*model.Book, error) {
	query := "SELECT id, title, author, publisher, isbn, cover_image, created_at FROM books ORDER BY rowid"
	rows, err := d.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*model.Book, 0)
	for rows.Next() {
		var b model.Book
		var createdAt string
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Publisher, &b.ISBN, &b.CoverImage, &createdAt); err != nil {
			return nil, err
		}
		b.CreatedAt = parseTime(createdAt)
		list = append(list, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (d *DB) AddBook(ctx context.Context, b *model.Book) error {
	if b.ID == "" {
		return &model.ValidationError{Field: "id", Message: "book id is empty"}
	}
	stmt := `
		INSERT INTO books (id, title, author, publisher, isbn, cover_image, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := d.ExecContext(ctx, stmt, b.ID, b.Title, b.Author, b.Publisher, b.ISBN, b.CoverImage, formatTime(b.CreatedAt)); err != nil {
		return errors.Wrapf(err, "failed to insert book %s", b.ID)
	}
	return nil
}

// DeleteBook removes the book and its sentences in one transaction. It
// reports how many sentences went with it.
func (d *DB) DeleteBook(ctx context.Context, id string) (int64, error) {
	if id == "" {
		return 0, &model.ValidationError{Field: "bookId", Message: "book id is empty"}
	}
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "DELETE FROM sentences WHERE book_id = ?", id)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete sentences")
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id); err != nil {
		return 0, errors.Wrap(err, "failed to delete book")
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (d *DB) GetBook(ctx context.Context, id string) (*model.Book, error) {
	query := "SELECT id, title, author, publisher, isbn, cover_image, created_at FROM books WHERE id = ?"
	var b model.Book
	var createdAt string
	err := d.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Title, &b.Author, &b.Publisher, &b.ISBN, &b.CoverImage, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &model.NotFoundError{Kind: "book", ID: id}
	}
	if err != nil {
		return nil, err
	}
	b.CreatedAt = parseTime(createdAt)
	return &b, nil
}
