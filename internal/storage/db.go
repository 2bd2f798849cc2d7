package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"articraft/internal"
)

// DB is the local card collection.
type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS cards (
  name TEXT PRIMARY KEY COLLATE NOCASE,
  type TEXT NOT NULL,
  color TEXT NOT NULL,
  rarity TEXT NOT NULL,
  illustrator TEXT,
  card_json TEXT NOT NULL,
  addedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_cards_type ON cards(type);
CREATE INDEX IF NOT EXISTS idx_cards_color ON cards(color);

CREATE TABLE IF NOT EXISTS metadata (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updatedAt TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) UpsertCards(cards []internal.Card) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
INSERT INTO cards (name, type, color, rarity, illustrator, card_json)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
  name=excluded.name,
  type=excluded.type,
  color=excluded.color,
  rarity=excluded.rarity,
  illustrator=excluded.illustrator,
  card_json=excluded.card_json,
  updatedAt=CURRENT_TIMESTAMP
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range cards {
		blob, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("encode card %q: %w", c.Name, err)
		}
		if _, err := stmt.Exec(c.Name, c.Type, c.Color, string(c.Rarity), c.Illustrator, string(blob)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (d *DB) ListCards() ([]internal.Card, error) {
	rows, err := d.conn.Query(`SELECT card_json FROM cards ORDER BY type ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []internal.Card
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		var c internal.Card
		if err := json.Unmarshal([]byte(blob), &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (d *DB) GetCard(name string) (*internal.Card, error) {
	var blob string
	err := d.conn.QueryRow(`SELECT card_json FROM cards WHERE name = ?`, name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var c internal.Card
	if err := json.Unmarshal([]byte(blob), &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (d *DB) DeleteCard(name string) (bool, error) {
	res, err := d.conn.Exec(`DELETE FROM cards WHERE name = ?`, name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (d *DB) SetMetadata(key, value string) error {
	_, err := d.conn.Exec(`
INSERT INTO metadata (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updatedAt = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (d *DB) GetMetadata(key string) (*string, error) {
	var value string
	err := d.conn.QueryRow(`SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
