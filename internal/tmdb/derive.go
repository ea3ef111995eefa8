package tmdb

// Fixed base URIs for composing resource URLs from opaque keys.
const (
	ImageBaseURL     = "https://image.tmdb.org/t/p/w500"
	YoutubeWatchURL  = "https://www.youtube.com/watch?v="
	IMDBTitleBaseURL = "https://www.imdb.com/title/"
	IMDBNameBaseURL  = "https://www.imdb.com/name/"
)

// Director returns the name of the first crew member whose job is exactly
// "Director". The match is case-sensitive; a crew without one is a data
// integrity failure, not a user error.
func (c *Credits) Director() (string, error) {
	for _, member := range c.Crew {
		if member.Job == "Director" {
			return member.Name, nil
		}
	}
	return "", ErrNoDirector
}

// TrailerKey selects the trailer to keep: the first official candidate in
// provider order, or the first candidate overall when none is official.
func (v *VideoList) TrailerKey() (string, error) {
	if len(v.Results) == 0 {
		return "", ErrNoTrailer
	}
	for _, video := range v.Results {
		if video.Official {
			return video.Key, nil
		}
	}
	return v.Results[0].Key, nil
}

// ImageURL composes the full image URL from a poster/backdrop key.
// An empty key yields nil: the record simply has no image.
func ImageURL(key string) *string {
	return resourceURL(ImageBaseURL, key)
}

// TrailerURL composes the canonical playback URL from a trailer key.
func TrailerURL(key string) *string {
	return resourceURL(YoutubeWatchURL, key)
}

// IMDBTitleURL composes the IMDB page URL for a movie cross-reference key.
func IMDBTitleURL(key string) *string {
	return resourceURL(IMDBTitleBaseURL, key)
}

// IMDBNameURL composes the IMDB page URL for a person cross-reference key.
func IMDBNameURL(key string) *string {
	return resourceURL(IMDBNameBaseURL, key)
}

func resourceURL(base, key string) *string {
	if key == "" {
		return nil
	}
	url := base + key
	return &url
}

// StringOrEmpty flattens an optional provider field into the empty-string
// convention used by the relational schema.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IntOrZero flattens an optional runtime into the zero convention.
func IntOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
