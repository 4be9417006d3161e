package entities

import "errors"

// Common errors
var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrIncomeNotFound     = errors.New("income entry not found")
	ErrValidationFailed   = errors.New("validation failed")
	ErrStorageWriteFailed = errors.New("storage write failed")
)

// DateLayout is the calendar date format used by income entries
const DateLayout = "2006-01-02"

// Record is anything stored in a collection keyed by a server-assigned id
type Record interface {
	RecordID() string
}

// Project represents a portfolio project shown on the public site
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	VideoURL    string   `json:"videoUrl,omitempty"`
	Client      string   `json:"client,omitempty"`
	Year        *int     `json:"year,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Tools       []string `json:"tools,omitempty"`
}

// RecordID returns the project id
func (p Project) RecordID() string { return p.ID }

// IncomeEntry represents a single freelance payment
type IncomeEntry struct {
	ID      string  `json:"id"`
	Project string  `json:"project"`
	Client  string  `json:"client"`
	Amount  float64 `json:"amount"`
	Date    string  `json:"date"`
}

// RecordID returns the income entry id
func (e IncomeEntry) RecordID() string { return e.ID }

// DB is the whole persisted state. Both collections are always present.
type DB struct {
	Projects []Project     `json:"projects"`
	Incomes  []IncomeEntry `json:"incomes"`
}

// NewDB returns an empty database with both collections initialized
func NewDB() *DB {
	return &DB{
		Projects: []Project{},
		Incomes:  []IncomeEntry{},
	}
}

// Normalize replaces nil collections with empty ones so they serialize as []
func (db *DB) Normalize() *DB {
	if db.Projects == nil {
		db.Projects = []Project{}
	}
	if db.Incomes == nil {
		db.Incomes = []IncomeEntry{}
	}
	return db
}

// Clone returns a deep copy of the database
func (db *DB) Clone() *DB {
	out := &DB{
		Projects: make([]Project, len(db.Projects)),
		Incomes:  make([]IncomeEntry, len(db.Incomes)),
	}
	for i, p := range db.Projects {
		out.Projects[i] = p.Clone()
	}
	copy(out.Incomes, db.Incomes)
	return out
}

// Clone returns a copy of the project that shares no slices or pointers
func (p Project) Clone() Project {
	if p.Year != nil {
		year := *p.Year
		p.Year = &year
	}
	if p.Tools != nil {
		p.Tools = append([]string(nil), p.Tools...)
	}
	return p
}

// ProjectIndex returns the position of the project with the given id or -1
func (db *DB) ProjectIndex(id string) int {
	for i := range db.Projects {
		if db.Projects[i].ID == id {
			return i
		}
	}
	return -1
}

// IncomeIndex returns the position of the income entry with the given id or -1
func (db *DB) IncomeIndex(id string) int {
	for i := range db.Incomes {
		if db.Incomes[i].ID == id {
			return i
		}
	}
	return -1
}
