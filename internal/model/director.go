package model

// Director is a stage director on the theater's roster.
//
// Fields:
//  ID                – unique record identifier.
//  Name              – full name.
//  YearsOfExperience – years of professional experience.
//  BirthYear         – four-digit birth year.
type Director struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	YearsOfExperience int    `json:"years_of_experience"`
	BirthYear         int    `json:"birth_year"`
}

// RecordID implements store.Record.
func (d Director) RecordID() int64 { return d.ID }

// WithID implements store.Record.
func (d Director) WithID(id int64) Director { d.ID = id; return d }
