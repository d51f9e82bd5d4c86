package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"venue-webapp/clock"
	"venue-webapp/model"
)

// AllGenres is the genre filter value that disables genre filtering.
const AllGenres = "All"

type ShowQuery struct {
	Genre  string
	Search string
	From   string
}

// Filter returns the shows matching q sorted by date and time. The input
// slice is not modified.
func Filter(shows []model.Show, q ShowQuery) []model.Show {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	genre := strings.TrimSpace(q.Genre)

	filtered := []model.Show{}
	for _, show := range shows {
		if genre != "" && genre != AllGenres && !strings.EqualFold(show.Genre, genre) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(show.Title), search) &&
			!strings.Contains(strings.ToLower(show.Artist), search) {
			continue
		}
		if q.From != "" && show.Date < q.From {
			continue
		}
		filtered = append(filtered, show)
	}

	SortByDate(filtered)
	return filtered
}

// SortByDate orders shows by date then time, earliest first.
func SortByDate(shows []model.Show) {
	sort.SliceStable(shows, func(i, j int) bool {
		if shows[i].Date != shows[j].Date {
			return shows[i].Date < shows[j].Date
		}
		return shows[i].Time < shows[j].Time
	})
}

// Genres lists the distinct non-empty genres in alphabetical order.
func Genres(shows []model.Show) []string {
	seen := map[string]bool{}
	genres := []string{}
	for _, show := range shows {
		if show.Genre == "" || seen[show.Genre] {
			continue
		}
		seen[show.Genre] = true
		genres = append(genres, show.Genre)
	}
	sort.Strings(genres)
	return genres
}

// OnDate returns the shows scheduled on date (YYYY-MM-DD).
func OnDate(shows []model.Show, date string) []model.Show {
	matched := []model.Show{}
	for _, show := range shows {
		if show.Date == date {
			matched = append(matched, show)
		}
	}
	SortByDate(matched)
	return matched
}

// DatesInMonth lists the distinct dates in the given month that have at
// least one show.
func DatesInMonth(shows []model.Show, year int, month time.Month) []string {
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	seen := map[string]bool{}
	dates := []string{}
	for _, show := range shows {
		if strings.HasPrefix(show.Date, prefix) && !seen[show.Date] {
			seen[show.Date] = true
			dates = append(dates, show.Date)
		}
	}
	sort.Strings(dates)
	return dates
}

// Upcoming returns shows on or after today, earliest first. limit <= 0
// returns all of them.
func Upcoming(shows []model.Show, now time.Time, limit int) []model.Show {
	upcoming := Filter(shows, ShowQuery{From: now.Format(clock.DateLayout)})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// Archive collects the shows that took place before today. Year and genre
// narrow the listed shows; the stats always cover the whole archive.
func Archive(shows []model.Show, now time.Time, year, genre string) model.Archive {
	today := now.Format(clock.DateLayout)

	past := []model.Show{}
	for _, show := range shows {
		if show.Date < today {
			past = append(past, show)
		}
	}

	artists := map[string]bool{}
	years := map[string]bool{}
	stats := model.ArchiveStats{TotalShows: len(past)}
	for _, show := range past {
		artists[strings.ToLower(show.Artist)] = true
		if len(show.Date) >= 4 {
			years[show.Date[:4]] = true
		}
		if show.SoldOut {
			stats.SoldOutShows++
		}
	}
	stats.TotalArtists = len(artists)
	stats.YearsActive = len(years)

	listed := []model.Show{}
	for _, show := range past {
		if year != "" && !strings.HasPrefix(show.Date, year) {
			continue
		}
		if genre != "" && genre != AllGenres && !strings.EqualFold(show.Genre, genre) {
			continue
		}
		listed = append(listed, show)
	}
	SortByDate(listed)
	for i, j := 0, len(listed)-1; i < j; i, j = i+1, j-1 {
		listed[i], listed[j] = listed[j], listed[i]
	}

	yearList := make([]string, 0, len(years))
	for y := range years {
		yearList = append(yearList, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(yearList)))

	return model.Archive{
		Stats:  stats,
		Years:  yearList,
		Genres: Genres(past),
		Shows:  listed,
	}
}
