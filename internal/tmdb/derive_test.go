package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredits_Director(t *testing.T) {
	t.Run("picks first crew member with Director job", func(t *testing.T) {
		credits := &Credits{
			Crew: []CrewMember{
				{Name: "Name1", Job: "Producer"},
				{Name: "Name2", Job: "Director"},
			},
		}

		director, err := credits.Director()
		require.NoError(t, err)
		assert.Equal(t, "Name2", director)
	})

	t.Run("first of several directors wins", func(t *testing.T) {
		credits := &Credits{
			Crew: []CrewMember{
				{Name: "First", Job: "Director"},
				{Name: "Second", Job: "Director"},
			},
		}

		director, err := credits.Director()
		require.NoError(t, err)
		assert.Equal(t, "First", director)
	})

	t.Run("job match is case-sensitive", func(t *testing.T) {
		credits := &Credits{
			Crew: []CrewMember{
				{Name: "Name1", Job: "director"},
			},
		}

		_, err := credits.Director()
		assert.ErrorIs(t, err, ErrNoDirector)
	})

	t.Run("empty crew", func(t *testing.T) {
		credits := &Credits{}

		_, err := credits.Director()
		assert.ErrorIs(t, err, ErrNoDirector)
	})
}

func TestVideoList_TrailerKey(t *testing.T) {
	t.Run("prefers first official trailer", func(t *testing.T) {
		videos := &VideoList{
			Results: []Video{
				{Site: "Youtube", Key: "0YAdsfsmFI", Official: false},
				{Site: "Youtube", Key: "0YAKkHutmFI", Official: true},
			},
		}

		key, err := videos.TrailerKey()
		require.NoError(t, err)
		assert.Equal(t, "0YAKkHutmFI", key)
	})

	t.Run("falls back to first candidate when none official", func(t *testing.T) {
		videos := &VideoList{
			Results: []Video{
				{Site: "Youtube", Key: "0YAdsfsmFI", Official: false},
				{Site: "Youtube", Key: "other", Official: false},
			},
		}

		key, err := videos.TrailerKey()
		require.NoError(t, err)
		assert.Equal(t, "0YAdsfsmFI", key)
	})

	t.Run("no candidates", func(t *testing.T) {
		videos := &VideoList{}

		_, err := videos.TrailerKey()
		assert.ErrorIs(t, err, ErrNoTrailer)
	})
}

func TestResourceURLs(t *testing.T) {
	t.Run("image url from poster key", func(t *testing.T) {
		url := ImageURL("/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg")
		require.NotNil(t, url)
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/arw2vcBveWOVZr6pxd9XTd1TdQa.jpg", *url)
	})

	t.Run("trailer url from video key", func(t *testing.T) {
		url := TrailerURL("0YAKkHutmFI")
		require.NotNil(t, url)
		assert.Equal(t, "https://www.youtube.com/watch?v=0YAKkHutmFI", *url)
	})

	t.Run("imdb title url", func(t *testing.T) {
		url := IMDBTitleURL("tt0109830")
		require.NotNil(t, url)
		assert.Equal(t, "https://www.imdb.com/title/tt0109830", *url)
	})

	t.Run("imdb name url", func(t *testing.T) {
		url := IMDBNameURL("nm0000288")
		require.NotNil(t, url)
		assert.Equal(t, "https://www.imdb.com/name/nm0000288", *url)
	})

	t.Run("empty keys yield nil, not base url", func(t *testing.T) {
		assert.Nil(t, ImageURL(""))
		assert.Nil(t, TrailerURL(""))
		assert.Nil(t, IMDBTitleURL(""))
		assert.Nil(t, IMDBNameURL(""))
	})
}
