package supabase

import "github.com/google/uuid"

// validID reports whether id can name a portfolio row. Row ids are Postgres
// UUIDs, and the database answers any other string with a syntax error
// rather than an empty result.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
