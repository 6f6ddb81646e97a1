// Package editor builds the edit dialogs shown in edit mode and applies
// their submitted values to the content store.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Zachkp/portfolio/internal/content"
)

// ErrUnknownDialog is returned for dialog IDs that do not exist.
var ErrUnknownDialog = errors.New("unknown dialog")

// Field is one input of a dialog.
type Field struct {
	Name      string
	Label     string
	Value     string
	Multiline bool
}

// Dialog is a modal form pre-filled with the current content.
type Dialog struct {
	ID     string
	Index  int
	Title  string
	Fields []Field

	// Categories is set for the skills dialog only.
	Categories []content.SkillCategory
}

// Action is the URL the dialog form posts to.
func (d *Dialog) Action() string {
	if isList(d.ID) {
		return "/admin/edit/" + d.ID + "/" + strconv.Itoa(d.Index)
	}
	return "/admin/edit/" + d.ID
}

// Anchor is the page fragment the dialog's section lives under.
func (d *Dialog) Anchor() string {
	switch d.ID {
	case "work", "portfolio":
		return "projects"
	case "achievement", "skills":
		return "skills"
	default:
		return d.ID
	}
}

type fieldDef struct {
	name, label string
	multiline   bool
}

var sectionDialogs = map[content.SectionName]struct {
	title  string
	fields []fieldDef
}{
	content.Hero: {"Edit Hero Section", []fieldDef{
		{"name", "Name", false},
		{"subtitle", "Subtitle", false},
		{"description", "Description", true},
	}},
	content.About: {"Edit About Section", []fieldDef{
		{"intro", "Introduction", true},
		{"approach", "Approach", true},
	}},
	content.Contact: {"Edit Contact Information", []fieldDef{
		{"email", "Email", false},
		{"phone", "Phone", false},
		{"linkedinUrl", "LinkedIn URL", false},
	}},
	content.Footer: {"Edit Footer", []fieldDef{
		{"brand", "Name", false},
		{"blurb", "Blurb", true},
		{"tagline", "Tagline", false},
		{"githubUrl", "GitHub URL", false},
	}},
}

var (
	achievementFields = []fieldDef{
		{"title", "Title", false},
		{"description", "Description", true},
	}
	workFields = []fieldDef{
		{"title", "Title", false},
		{"problem", "Problem", true},
		{"solution", "Solution", true},
		{"impact", "Impact", true},
	}
	portfolioFields = []fieldDef{
		{"title", "Title", false},
		{"description", "Description", true},
		{"expandedDescription", "Details", true},
		{"image", "Image URL", false},
	}
)

func isList(id string) bool {
	return id == "achievement" || id == "work" || id == "portfolio"
}

// Editor opens and saves dialogs against a content store.
type Editor struct {
	store *content.Store
}

// New returns an Editor for store.
func New(store *content.Store) *Editor {
	return &Editor{store: store}
}

// Open returns the dialog id (index is used by list dialogs) filled with the
// current values.
func (e *Editor) Open(ctx context.Context, id string, index int) (*Dialog, error) {
	if id == "skills" {
		cats, err := e.store.SkillCategories(ctx)
		if err != nil {
			return nil, err
		}
		return &Dialog{ID: id, Title: "Edit Skills & Expertise", Categories: cats}, nil
	}

	if def, ok := sectionDialogs[content.SectionName(id)]; ok {
		values, err := e.store.Section(ctx, content.SectionName(id))
		if err != nil {
			return nil, err
		}
		return &Dialog{ID: id, Title: def.title, Fields: fill(def.fields, values)}, nil
	}

	switch id {
	case "achievement":
		items, err := e.store.Achievements(ctx)
		if err != nil {
			return nil, err
		}
		if err := checkIndex(index, len(items)); err != nil {
			return nil, err
		}
		a := items[index]
		return &Dialog{ID: id, Index: index, Title: "Edit Achievement", Fields: fill(achievementFields, map[string]string{
			"title": a.Title, "description": a.Description,
		})}, nil
	case "work":
		items, err := e.store.WorkExperience(ctx)
		if err != nil {
			return nil, err
		}
		if err := checkIndex(index, len(items)); err != nil {
			return nil, err
		}
		w := items[index]
		return &Dialog{ID: id, Index: index, Title: "Edit Project", Fields: fill(workFields, map[string]string{
			"title": w.Title, "problem": w.Problem, "solution": w.Solution, "impact": w.Impact,
		})}, nil
	case "portfolio":
		items, err := e.store.Portfolio(ctx)
		if err != nil {
			return nil, err
		}
		if err := checkIndex(index, len(items)); err != nil {
			return nil, err
		}
		p := items[index]
		return &Dialog{ID: id, Index: index, Title: "Edit Portfolio Item", Fields: fill(portfolioFields, map[string]string{
			"title": p.Title, "description": p.Description, "expandedDescription": p.ExpandedDescription, "image": p.Image,
		})}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDialog, id)
}

// Save writes the submitted values of dialog id back to the store. Values are
// taken as-is; empty strings are allowed and missing keys save as empty.
func (e *Editor) Save(ctx context.Context, id string, index int, values map[string]string) error {
	if _, ok := sectionDialogs[content.SectionName(id)]; ok {
		fields := content.Fields{}
		for _, name := range FieldNames(id) {
			fields[name] = values[name]
		}
		return e.store.SaveSection(ctx, content.SectionName(id), fields)
	}

	switch id {
	case "achievement":
		return e.store.UpdateAchievement(ctx, index, content.Achievement{
			Title:       values["title"],
			Description: values["description"],
		})
	case "work":
		return e.store.UpdateWorkItem(ctx, index, content.WorkItem{
			Title:    values["title"],
			Problem:  values["problem"],
			Solution: values["solution"],
			Impact:   values["impact"],
		})
	case "portfolio":
		return e.store.UpdatePortfolioItem(ctx, index, content.PortfolioItem{
			Title:               values["title"],
			Description:         values["description"],
			ExpandedDescription: values["expandedDescription"],
			Image:               values["image"],
		})
	}

	return fmt.Errorf("%w: %q", ErrUnknownDialog, id)
}

// FieldNames lists the form keys dialog id accepts.
func FieldNames(id string) []string {
	var defs []fieldDef
	if d, ok := sectionDialogs[content.SectionName(id)]; ok {
		defs = d.fields
	} else {
		switch id {
		case "achievement":
			defs = achievementFields
		case "work":
			defs = workFields
		case "portfolio":
			defs = portfolioFields
		}
	}
	names := make([]string, len(defs))
	for i, d := range defs {
		names[i] = d.name
	}
	return names
}

// IsList reports whether dialog id edits one entry of a list.
func IsList(id string) bool {
	return isList(id)
}

func fill(defs []fieldDef, values map[string]string) []Field {
	out := make([]Field, len(defs))
	for i, d := range defs {
		out[i] = Field{Name: d.name, Label: d.label, Value: values[d.name], Multiline: d.multiline}
	}
	return out
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d", content.ErrIndexOutOfRange, i)
	}
	return nil
}
