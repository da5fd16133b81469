// Package stats computes the dashboard projections. Everything here
// is a read-only pass over the current collections, recomputed on
// every call; nothing is cached or maintained incrementally.
package stats

import (
	"math"

	"github.com/iliyamo/theater-dashboard/internal/model"
)

// GenreStat is one row of the genre distribution chart.
type GenreStat struct {
	Genre   string `json:"genre"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// TotalRevenue sums the price of every sold seat. A ticket whose seat
// no longer exists contributes nothing.
func TotalRevenue(tickets []model.Ticket, seats []model.Seat) int64 {
	prices := make(map[int64]int64, len(seats))
	for _, s := range seats {
		prices[s.ID] = s.Price
	}
	var total int64
	for _, t := range tickets {
		total += prices[t.SeatID]
	}
	return total
}

// GenreDistribution counts plays per genre and the share of the
// repertoire each genre holds, rounded to the nearest whole percent.
// With no plays every share is 0.
func GenreDistribution(plays []model.Play, genres []string) []GenreStat {
	out := make([]GenreStat, 0, len(genres))
	for _, g := range genres {
		count := 0
		for _, p := range plays {
			if p.Genre == g {
				count++
			}
		}
		percent := 0
		if len(plays) > 0 {
			percent = int(math.Round(float64(count) / float64(len(plays)) * 100))
		}
		out = append(out, GenreStat{Genre: g, Count: count, Percent: percent})
	}
	return out
}

// RecentSales returns the last n tickets in collection order,
// reversed. Recency is defined by insertion order alone; the ticket
// date field is operator input and never consulted.
func RecentSales(tickets []model.Ticket, n int) []model.Ticket {
	if n > len(tickets) {
		n = len(tickets)
	}
	if n <= 0 {
		return []model.Ticket{}
	}
	tail := tickets[len(tickets)-n:]
	out := make([]model.Ticket, n)
	for i, t := range tail {
		out[n-1-i] = t
	}
	return out
}
