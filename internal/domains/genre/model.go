package genre

import "time"

// Genre is a small shared lookup entity. Rows are created lazily on first
// encounter and are effectively immutable afterwards; the canonical
// vocabulary is seeded at process start.
type Genre struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"` // unique
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const MaxNameLength = 50

// FallbackName is the catch-all category for names outside the canonical
// vocabulary. Unknown names still get their own row (unfiltered
// get-or-create); the fallback only guarantees the category exists.
const FallbackName = "Other"

// Vocabulary returns the canonical genre names, seeded at startup.
func Vocabulary() []string {
	return []string{
		"Action",
		"Adventure",
		"Animation",
		"Comedy",
		"Crime",
		"Documentary",
		"Drama",
		"Family",
		"Fantasy",
		"History",
		"Horror",
		"Music",
		"Mystery",
		"Romance",
		"Science Fiction",
		"TV Movie",
		"Thriller",
		"War",
		"Western",
		FallbackName,
	}
}
