// Package sqlstore implements the store repositories over database/sql. The
// sqlite and postgres drivers wrap it with their own connection setup and
// migrations and describe their differences through a Dialect.
package sqlstore

import (
	"strconv"
	"strings"
)

type Dialect interface {
	// Name is used in logs and error messages.
	Name() string

	// Rebind rewrites `?` placeholders into the driver's bind syntax.
	Rebind(query string) string

	// IsUniqueViolation reports whether err came from a unique constraint.
	IsUniqueViolation(err error) bool
}

// RebindDollar turns `?` placeholders into `$1..$n`. None of the queries in
// this package contain a literal question mark.
func RebindDollar(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
