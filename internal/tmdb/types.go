package tmdb

// Typed payloads for the TMDB responses the catalog consumes.
// Optional provider fields are pointers; TMDB returns explicit nulls for
// missing poster/backdrop/imdb/birthday values.

// MovieDetails is the primary record returned by GET /movie/{id}.
type MovieDetails struct {
	Adult         bool     `json:"adult"`
	BackdropPath  *string  `json:"backdrop_path"`
	Budget        float64  `json:"budget"`
	Genres        []Genre  `json:"genres"`
	IMDBID        *string  `json:"imdb_id"`
	OriginalTitle string   `json:"original_title"`
	Overview      string   `json:"overview"`
	PosterPath    *string  `json:"poster_path"`
	ReleaseDate   string   `json:"release_date"`
	Revenue       float64  `json:"revenue"`
	Runtime       *int     `json:"runtime"`
	Status        string   `json:"status"`
	Tagline       *string  `json:"tagline"`
	Title         string   `json:"title"`
}

// Genre as reported inside MovieDetails.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Credits is the cast + crew payload of GET /movie/{id}/credits.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember carries only the person id; full details come from
// a per-person fetch during actor resolution.
type CastMember struct {
	ID int64 `json:"id"`
}

type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// VideoList is the payload of GET /movie/{id}/videos.
type VideoList struct {
	Results []Video `json:"results"`
}

type Video struct {
	Site     string `json:"site"`
	Key      string `json:"key"`
	Official bool   `json:"official"`
}

// Person is the payload of GET /person/{id}.
type Person struct {
	Name         string  `json:"name"`
	Biography    string  `json:"biography"`
	PlaceOfBirth *string `json:"place_of_birth"`
	Birthday     *string `json:"birthday"`
	IMDBID       *string `json:"imdb_id"`
	ProfilePath  *string `json:"profile_path"`
}

// SearchResults is the payload of GET /search/movie.
type SearchResults struct {
	Results []SearchResult `json:"results"`
}

type SearchResult struct {
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path"`
}

// GenreNames extracts the plain names from the genres block.
func (m *MovieDetails) GenreNames() []string {
	names := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		names = append(names, g.Name)
	}
	return names
}

// CastIDs returns the cast member ids in provider order.
func (c *Credits) CastIDs() []int64 {
	ids := make([]int64, 0, len(c.Cast))
	for _, member := range c.Cast {
		ids = append(ids, member.ID)
	}
	return ids
}
