package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/mindping/internal/models"
)

func (s *Store) GetReflections() ([]models.Reflection, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, date, question, text, emojis
		FROM reflections ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reflections := []models.Reflection{}
	for rows.Next() {
		var r models.Reflection
		var date, emojis string

		if err := rows.Scan(&r.ID, &date, &r.Question, &r.Text, &emojis); err != nil {
			return nil, err
		}

		r.Date, err = time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date for reflection %s: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(emojis), &r.Emojis); err != nil {
			return nil, fmt.Errorf("failed to parse emojis for reflection %s: %w", r.ID, err)
		}

		reflections = append(reflections, r)
	}

	return reflections, rows.Err()
}

// ReplaceReflections rewrites the reflections table inside one transaction.
func (s *Store) ReplaceReflections(reflections []models.Reflection) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM reflections"); err != nil {
		return fmt.Errorf("failed to clear reflections: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO reflections (id, day, date, question, text, emojis)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range reflections {
		emojis := r.Emojis
		if emojis == nil {
			emojis = []string{}
		}
		encoded, err := json.Marshal(emojis)
		if err != nil {
			return fmt.Errorf("failed to encode emojis for reflection %s: %w", r.ID, err)
		}
		if _, err := stmt.Exec(r.ID, r.Day().String(), r.Date.Format(time.RFC3339Nano), r.Question, r.Text, string(encoded)); err != nil {
			return fmt.Errorf("failed to insert reflection for %s: %w", r.Day(), err)
		}
	}

	return tx.Commit()
}
