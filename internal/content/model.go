// Package content holds the editable page content and its persistence policy.
//
// Every section starts from hard-coded defaults. Once an admin saves an edit the
// section is written to the Backend as JSON and read back on every render.
// Display metadata (icons, gradients, accent colours) is not content: it is
// stripped before writing and reattached from the defaults by position.
package content

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by a Backend when no value is stored under a key.
	ErrNotFound = errors.New("not found")

	// ErrUnknownSection is returned for section names outside the page.
	ErrUnknownSection = errors.New("unknown section")

	// ErrIndexOutOfRange is returned by positional edits with an invalid index.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Backend is the persistent key-value storage behind the Store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

// Storage keys for list content.
const (
	KeySkillCategories = "skillCategories"
	KeyAchievements    = "achievements"
	KeyPortfolio       = "portfolioData"
	KeyWorkExperience  = "workExperienceData"
)

// SectionName identifies a page section with a flat field set.
type SectionName string

const (
	Hero    SectionName = "hero"
	About   SectionName = "about"
	Contact SectionName = "contact"
	Footer  SectionName = "footer"
)

// Sections lists the flat sections in page order.
var Sections = []SectionName{Hero, About, Contact, Footer}

// Key returns the storage key of the section.
func (n SectionName) Key() string {
	return "section:" + string(n)
}

// Valid reports whether n names a known section.
func (n SectionName) Valid() bool {
	_, ok := defaultSections[n]
	return ok
}

// AllKeys returns every storage key the store may write.
func AllKeys() []string {
	keys := []string{KeySkillCategories, KeyAchievements, KeyPortfolio, KeyWorkExperience}
	for _, s := range Sections {
		keys = append(keys, s.Key())
	}
	return keys
}

// Fields maps a section's field names to their text.
type Fields map[string]string

// Clone returns an independent copy of f.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Display is presentation metadata. It is never serialised.
type Display struct {
	Icon     string
	Gradient string
	Accent   string
}

type SkillCategory struct {
	Title   string   `json:"title"`
	Skills  []string `json:"skills"`
	Display Display  `json:"-"`
}

type Achievement struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Display     Display `json:"-"`
}

// WorkItem is a shipped project shown under work experience.
type WorkItem struct {
	Title    string  `json:"title"`
	Problem  string  `json:"problem"`
	Solution string  `json:"solution"`
	Impact   string  `json:"impact"`
	Display  Display `json:"-"`
}

// PortfolioItem is a personal portfolio entry (decks, case studies).
type PortfolioItem struct {
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	ExpandedDescription string  `json:"expandedDescription"`
	Image               string  `json:"image"`
	Display             Display `json:"-"`
}

// Page is a snapshot of everything rendered on the home page.
type Page struct {
	Hero            Fields
	About           Fields
	Contact         Fields
	Footer          Fields
	SkillCategories []SkillCategory
	Achievements    []Achievement
	WorkExperience  []WorkItem
	Portfolio       []PortfolioItem
}
