package db

// SaveFixups upserts resolver corrections so they survive restarts.
func (d *DB) SaveFixups(fixups map[string]string) error {
	tx, err := d.sql.Begin()
	if err != nil {
		return err
	}
	for input, canonical := range fixups {
		if _, err := tx.Exec(
			"INSERT INTO name_fixups (input, canonical) VALUES (?, ?) ON CONFLICT(input) DO UPDATE SET canonical = excluded.canonical",
			input, canonical,
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// LoadFixups returns all persisted resolver corrections.
func (d *DB) LoadFixups() (map[string]string, error) {
	rows, err := d.sql.Query("SELECT input, canonical FROM name_fixups")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fixups := make(map[string]string)
	for rows.Next() {
		var input, canonical string
		if err := rows.Scan(&input, &canonical); err != nil {
			return nil, err
		}
		fixups[input] = canonical
	}
	return fixups, rows.Err()
}
