package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jjquek/custodia/common"
)

// sqliteStore persists journal records in a single-table SQLite
// database. Slower than the LevelDB backend but yields a log that can
// be inspected with stock tooling.
type sqliteStore struct {
	db     *sql.DB
	insert *sql.Stmt
}

// NewSqliteStore opens (or creates) a SQLite-backed journal store at
// the given file path.
func NewSqliteStore(path string) (Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS journal (
		seq INTEGER PRIMARY KEY,
		record BLOB NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	insert, err := db.Prepare(`INSERT INTO journal (seq, record) VALUES (?, ?)`)
	if err != nil {
		return nil, err
	}
	return &sqliteStore{db: db, insert: insert}, nil
}

func (s *sqliteStore) Append(record Record) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}
	_, err = s.insert.Exec(int64(record.Seq), data)
	return err
}

func (s *sqliteStore) Visit(from uint64, visit func(Record) error) error {
	rows, err := s.db.Query(`SELECT record FROM journal WHERE seq >= ? ORDER BY seq`, int64(from))
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return err
		}
		record, err := decodeRecord(data)
		if err != nil {
			return err
		}
		if err := visit(record); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (s *sqliteStore) Head() (uint64, common.Hash, error) {
	row := s.db.QueryRow(`SELECT record FROM journal ORDER BY seq DESC LIMIT 1`)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return 0, common.Hash{}, nil
		}
		return 0, common.Hash{}, err
	}
	record, err := decodeRecord(data)
	if err != nil {
		return 0, common.Hash{}, err
	}
	return record.Seq + 1, record.Digest, nil
}

func (s *sqliteStore) Flush() error {
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
