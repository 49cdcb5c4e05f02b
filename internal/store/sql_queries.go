package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, email, password_digest, first_name, last_name, date_of_birth, gender, created_at, updated_at, is_active)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id, email, password_digest, first_name, last_name, date_of_birth, gender, created_at, updated_at, is_active;`

	findUserByEmail = `SELECT id, email, password_digest, first_name, last_name, date_of_birth, gender, created_at, updated_at, is_active
    FROM users
    WHERE LOWER(email) = LOWER($1);`

	findUserByID = `SELECT id, email, password_digest, first_name, last_name, date_of_birth, gender, created_at, updated_at, is_active
    FROM users
    WHERE id = $1;`
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectExercises is the base SELECT over the read-only exercises table.
// Free-text and array columns are coalesced so records arrive fully
// materialized; ordering by id keeps every catalog response deterministic.
func selectExercises() sq.SelectBuilder {
	return psql.Select(
		"id",
		"COALESCE(name, '')",
		"COALESCE(equipment, '')",
		"COALESCE(instructions, '')",
		"COALESCE(images, '{}')",
		"COALESCE(primary_muscles, '{}')",
		"COALESCE(secondary_muscles, '{}')",
	).
		From("exercises").
		OrderBy("id")
}

// wherePrimaryMuscleContains restricts the selection to exercises whose
// primary_muscles array contains the given muscle. The match is
// case-insensitive and on the full token, not a substring.
func wherePrimaryMuscleContains(builder sq.SelectBuilder, muscle string) sq.SelectBuilder {
	return builder.Where(
		"EXISTS (SELECT 1 FROM unnest(primary_muscles) AS m WHERE LOWER(m) = LOWER(?))",
		muscle,
	)
}
