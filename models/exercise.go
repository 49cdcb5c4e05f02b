package models

// Exercise is a fully materialized catalog record. The catalog is populated
// out of band and is read-only at runtime; repositories return value records
// only, no lazy proxies cross the service boundary.
type Exercise struct {
	// ID is the opaque primary key of the exercise.
	ID string `json:"id"`

	// Name is the display name of the exercise. May be empty.
	Name string `json:"name"`

	// Equipment describes the equipment needed. May be empty.
	Equipment string `json:"equipment"`

	// Instructions is free-form guidance text. May be empty.
	Instructions string `json:"instructions"`

	// Images is an ordered list of illustration URLs.
	Images []string `json:"images"`

	// PrimaryMuscles is the ordered list of muscles the exercise principally
	// targets. The first entry is canonical for grouping. Original casing is
	// preserved on output; comparisons are case-insensitive.
	PrimaryMuscles []string `json:"primary_muscles"`

	// SecondaryMuscles is the ordered list of muscles assisting the movement.
	SecondaryMuscles []string `json:"secondary_muscles"`
}

// TableName returns the name of the database table
// associated with the Exercise model.
func (e Exercise) TableName() string {
	return "exercises"
}
