// Package postgres holds the PostgreSQL implementations of the repository
// interfaces. All queries are parameterized; search uses ILIKE with escaped
// wildcards.
package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps a user-supplied search term for use with ILIKE, escaping
// characters that would otherwise act as wildcards.
func likePattern(term string) string {
	if term == "" {
		return ""
	}
	return "%" + likeEscaper.Replace(term) + "%"
}
