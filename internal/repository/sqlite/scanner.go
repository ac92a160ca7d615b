package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanLogRow scans a single time_log row
func ScanLogRow(scanner Scanner) (*LogRow, error) {
	row := &LogRow{}
	var date string

	err := scanner.Scan(
		&row.ID,
		&row.SessionID,
		&date,
		&row.Duration,
		&row.CategoryID,
		&row.AccountKey,
		&row.Comment,
	)
	if err != nil {
		return nil, err
	}

	row.Date, err = ParseDateFromDB(date)
	if err != nil {
		return nil, err
	}

	return row, nil
}

// ScanLogRows scans multiple time_log rows
func ScanLogRows(rows Rows) ([]*LogRow, error) {
	var logRows []*LogRow
	for rows.Next() {
		row, err := ScanLogRow(rows)
		if err != nil {
			return nil, err
		}
		logRows = append(logRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logRows, nil
}

// ScanSessionRow scans a single sessions row
func ScanSessionRow(scanner Scanner) (*SessionRow, error) {
	session := &SessionRow{}
	var createdAt string

	err := scanner.Scan(&session.ID, &createdAt, &session.EntryCount)
	if err != nil {
		return nil, err
	}

	session.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return session, nil
}
