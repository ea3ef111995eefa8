package movie

import (
	"fmt"
	"time"
)

// Cache keys for the movie read paths. Detail entries are invalidated on
// update and delete; the TTL bounds staleness for anything missed.
const (
	DetailCacheTTL = 10 * time.Minute
	SearchCacheTTL = time.Hour
)

func DetailCacheKey(id int64) string {
	return fmt.Sprintf("movie:detail:%d", id)
}

func SearchCacheKey(query string) string {
	return fmt.Sprintf("movie:search:%s", query)
}
