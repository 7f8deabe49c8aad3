package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/damianp1350/ToDoAPI/model"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the sqlite connection and owns all query shaping. Business rules
// live in the service layer; this package only translates CRUD calls into
// store operations.
type DB struct {
	conn *sql.DB
}

func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.initSchema(); err != nil {
		return nil, err
	}

	log.Printf("Database initialized at %s", dbPath)
	return db, nil
}

func (db *DB) initSchema() error {
	schema := `
  	CREATE TABLE IF NOT EXISTS todos (
  		id INTEGER PRIMARY KEY AUTOINCREMENT,
  		title TEXT NOT NULL,
  		description TEXT,
  		percent_complete INTEGER NOT NULL DEFAULT 0,
  		expiry_date DATETIME NOT NULL,
  		is_completed BOOLEAN NOT NULL DEFAULT 0
  	);

  	CREATE INDEX IF NOT EXISTS idx_expiry_date ON todos(expiry_date);
	`

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// GetAll returns every todo ordered by id ascending.
func (db *DB) GetAll(ctx context.Context) ([]model.Todo, error) {
	query := `
  		SELECT id, title, description, percent_complete, expiry_date, is_completed
  		FROM todos
  		ORDER BY id ASC
	`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

// GetByID returns the todo with the given id, or nil if there is none.
// Absence is a normal outcome, not an error.
func (db *DB) GetByID(ctx context.Context, id int) (*model.Todo, error) {
	query := `
  		SELECT id, title, description, percent_complete, expiry_date, is_completed
  		FROM todos
  		WHERE id = ?
	`

	var todo model.Todo
	var description sql.NullString

	err := db.conn.QueryRowContext(ctx, query, id).Scan(
		&todo.ID,
		&todo.Title,
		&description,
		&todo.PercentComplete,
		&todo.ExpiryDate,
		&todo.IsCompleted,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	todo.Description = description.String
	return &todo, nil
}

// GetIncoming returns todos whose expiry date falls in [start, end).
func (db *DB) GetIncoming(ctx context.Context, start, end time.Time) ([]model.Todo, error) {
	query := `
  		SELECT id, title, description, percent_complete, expiry_date, is_completed
  		FROM todos
  		WHERE expiry_date >= ? AND expiry_date < ?
	`

	rows, err := db.conn.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list incoming todos: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

// Create inserts the todo and backfills its store-assigned id.
func (db *DB) Create(ctx context.Context, todo *model.Todo) error {
	query := `
  		INSERT INTO todos (title, description, percent_complete, expiry_date, is_completed)
  		VALUES (?, ?, ?, ?, ?)
	`

	result, err := db.conn.ExecContext(
		ctx,
		query,
		todo.Title,
		todo.Description,
		todo.PercentComplete,
		todo.ExpiryDate,
		todo.IsCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	todo.ID = int(id)
	return nil
}

// Update overwrites the full record matching the todo's id.
func (db *DB) Update(ctx context.Context, todo *model.Todo) error {
	query := `
  		UPDATE todos
  		SET title = ?, description = ?, percent_complete = ?,
  		    expiry_date = ?, is_completed = ?
  		WHERE id = ?
	`

	_, err := db.conn.ExecContext(
		ctx,
		query,
		todo.Title,
		todo.Description,
		todo.PercentComplete,
		todo.ExpiryDate,
		todo.IsCompleted,
		todo.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

// Delete removes the record matching the todo's id.
func (db *DB) Delete(ctx context.Context, todo *model.Todo) error {
	query := `DELETE FROM todos WHERE id = ?`

	if _, err := db.conn.ExecContext(ctx, query, todo.ID); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}

func scanTodos(rows *sql.Rows) ([]model.Todo, error) {
	var todos []model.Todo
	for rows.Next() {
		var todo model.Todo
		var description sql.NullString

		err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&description,
			&todo.PercentComplete,
			&todo.ExpiryDate,
			&todo.IsCompleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}

		todo.Description = description.String
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return todos, nil
}
