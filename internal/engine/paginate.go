package engine

// Paginate returns the window [offset, offset+limit) of rows, clipped to
// the sequence bounds. A zero limit means all remaining rows. An offset at
// or past the end yields an empty (non-nil) slice rather than an error.
func Paginate(rows []Row, offset, limit int) []Row {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []Row{}
	}
	rows = rows[offset:]
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	return rows
}
