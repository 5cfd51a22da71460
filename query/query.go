// Package query builds the backend-specific command strings fed to the
// benchmark runner. Builders are pure functions: identical inputs always
// produce identical output sequences.
package query

import "fmt"

// Type selects the shape of the generated commands.
type Type string

const (
	// Search fetches matching row IDs with sorting and pagination.
	Search Type = "search"
	// Count fetches only the number of matching rows.
	Count Type = "count"
)

// Valid reports whether t is a known query type.
func (t Type) Valid() bool {
	return t == Search || t == Count
}

// BuildMygram returns one MygramDB command per search word.
func BuildMygram(table string, words []string, typ Type, limit, offset int) []string {
	var queries []string
	for _, word := range words {
		switch typ {
		case Search:
			if offset > 0 {
				queries = append(queries, fmt.Sprintf("SEARCH %s %s SORT id ASC LIMIT %d,%d", table, word, offset, limit))
			} else {
				queries = append(queries, fmt.Sprintf("SEARCH %s %s SORT id ASC LIMIT %d", table, word, limit))
			}
		case Count:
			queries = append(queries, fmt.Sprintf("COUNT %s %s", table, word))
		}
	}
	return queries
}

// BuildMySQL returns one FULLTEXT statement per search word, matching
// against column in boolean mode.
func BuildMySQL(table, column string, words []string, typ Type, limit, offset int) []string {
	var queries []string
	for _, word := range words {
		match := fmt.Sprintf("MATCH(%s) AGAINST('%s' IN BOOLEAN MODE)", column, word)
		switch typ {
		case Search:
			queries = append(queries, fmt.Sprintf("SELECT id FROM %s WHERE enabled=1 AND %s ORDER BY id LIMIT %d,%d", table, match, offset, limit))
		case Count:
			queries = append(queries, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE enabled=1 AND %s", table, match))
		}
	}
	return queries
}
