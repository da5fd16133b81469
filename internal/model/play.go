package model

// Genres is the full set of genres a play may carry.
var Genres = []string{
	"Drama",
	"Comedy",
	"Tragedy",
	"Romance",
	"Classic",
	"Historical",
	"Psychological",
}

// DashboardGenres is the fixed subset the dashboard chart reports.
// Plays in other genres still count toward the distribution total.
var DashboardGenres = []string{"Drama", "Comedy", "Tragedy", "Historical"}

// Play is a production in the repertoire. DirectorID references a
// Director record; the reference may dangle after a director is
// deleted, in which case views render the name as unknown.
//
// Fields:
//  ID             – unique record identifier.
//  Title          – production title.
//  Genre          – one of Genres.
//  ProductionYear – year the production premiered.
//  DirectorID     – staging director.
type Play struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Genre          string `json:"genre"`
	ProductionYear int    `json:"production_year"`
	DirectorID     int64  `json:"director_id"`
}

// RecordID implements store.Record.
func (p Play) RecordID() int64 { return p.ID }

// WithID implements store.Record.
func (p Play) WithID(id int64) Play { p.ID = id; return p }
