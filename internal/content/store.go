package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Store reads and writes page content through a Backend.
type Store struct {
	backend Backend
	l       *zap.Logger

	// mu serialises read-modify-write edits; requests are served concurrently.
	mu sync.Mutex
}

// NewStore returns a Store backed by b.
func NewStore(b Backend, l *zap.Logger) *Store {
	if l == nil {
		l = zap.NewNop()
	}
	return &Store{backend: b, l: l.Named("content")}
}

// Section returns the current fields of a flat section.
func (s *Store) Section(ctx context.Context, name SectionName) (Fields, error) {
	defaults, ok := defaultSections[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}

	out := defaults.Clone()
	var stored Fields
	found, err := s.load(ctx, name.Key(), &stored)
	if err != nil {
		return nil, err
	}
	if !found {
		return out, nil
	}
	for _, f := range sectionFields[name] {
		if v, ok := stored[f]; ok {
			out[f] = v
		}
	}
	return out, nil
}

// SaveSection replaces the fields of a section. Field names the section does
// not have are dropped; fields missing from values keep their current text.
func (s *Store) SaveSection(ctx context.Context, name SectionName, values Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Section(ctx, name)
	if err != nil {
		return err
	}
	for _, f := range sectionFields[name] {
		if v, ok := values[f]; ok {
			current[f] = v
		}
	}
	return s.save(ctx, name.Key(), current)
}

// SkillCategories returns the skill categories with display metadata attached.
func (s *Store) SkillCategories(ctx context.Context) ([]SkillCategory, error) {
	defaults := defaultSkillCategories()
	return loadList(ctx, s, KeySkillCategories, defaults, func(i int, c *SkillCategory) {
		c.Display = defaults[i%len(defaults)].Display
		if c.Skills == nil {
			c.Skills = []string{}
		}
	})
}

// SaveSkillCategories persists cats. Display metadata is not written.
func (s *Store) SaveSkillCategories(ctx context.Context, cats []SkillCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, KeySkillCategories, cats)
}

// AddSkill appends skill to the category at index cat. It reports false and
// changes nothing when skill is empty after trimming.
func (s *Store) AddSkill(ctx context.Context, cat int, skill string) (bool, error) {
	skill = strings.TrimSpace(skill)

	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.SkillCategories(ctx)
	if err != nil {
		return false, err
	}
	if cat < 0 || cat >= len(cats) {
		return false, fmt.Errorf("%w: category %d", ErrIndexOutOfRange, cat)
	}
	if skill == "" {
		return false, nil
	}

	cats[cat].Skills = append(cats[cat].Skills, skill)
	if err := s.save(ctx, KeySkillCategories, cats); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveSkill deletes the skill at position idx of category cat.
func (s *Store) RemoveSkill(ctx context.Context, cat, idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cats, err := s.SkillCategories(ctx)
	if err != nil {
		return err
	}
	if cat < 0 || cat >= len(cats) {
		return fmt.Errorf("%w: category %d", ErrIndexOutOfRange, cat)
	}
	skills, err := removeAt(cats[cat].Skills, idx)
	if err != nil {
		return err
	}
	cats[cat].Skills = skills
	return s.save(ctx, KeySkillCategories, cats)
}

// Achievements returns the achievement cards.
func (s *Store) Achievements(ctx context.Context) ([]Achievement, error) {
	defaults := defaultAchievements()
	return loadList(ctx, s, KeyAchievements, defaults, func(i int, a *Achievement) {
		a.Display = defaults[i%len(defaults)].Display
	})
}

// UpdateAchievement replaces the achievement at idx.
func (s *Store) UpdateAchievement(ctx context.Context, idx int, a Achievement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.Achievements(ctx)
	if err != nil {
		return err
	}
	if err := replaceAt(items, idx, a); err != nil {
		return err
	}
	return s.save(ctx, KeyAchievements, items)
}

// WorkExperience returns the work experience projects.
func (s *Store) WorkExperience(ctx context.Context) ([]WorkItem, error) {
	defaults := defaultWorkExperience()
	return loadList(ctx, s, KeyWorkExperience, defaults, func(i int, w *WorkItem) {
		w.Display = defaults[i%len(defaults)].Display
	})
}

// UpdateWorkItem replaces the work item at idx.
func (s *Store) UpdateWorkItem(ctx context.Context, idx int, w WorkItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.WorkExperience(ctx)
	if err != nil {
		return err
	}
	if err := replaceAt(items, idx, w); err != nil {
		return err
	}
	return s.save(ctx, KeyWorkExperience, items)
}

// DeleteWorkItem removes the work item at idx.
func (s *Store) DeleteWorkItem(ctx context.Context, idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.WorkExperience(ctx)
	if err != nil {
		return err
	}
	items, err = removeAt(items, idx)
	if err != nil {
		return err
	}
	return s.save(ctx, KeyWorkExperience, items)
}

// Portfolio returns the personal portfolio entries.
func (s *Store) Portfolio(ctx context.Context) ([]PortfolioItem, error) {
	defaults := defaultPortfolio()
	return loadList(ctx, s, KeyPortfolio, defaults, func(i int, p *PortfolioItem) {
		p.Display = defaults[i%len(defaults)].Display
	})
}

// UpdatePortfolioItem replaces the portfolio entry at idx.
func (s *Store) UpdatePortfolioItem(ctx context.Context, idx int, p PortfolioItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.Portfolio(ctx)
	if err != nil {
		return err
	}
	if err := replaceAt(items, idx, p); err != nil {
		return err
	}
	return s.save(ctx, KeyPortfolio, items)
}

// DeletePortfolioItem removes the portfolio entry at idx.
func (s *Store) DeletePortfolioItem(ctx context.Context, idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.Portfolio(ctx)
	if err != nil {
		return err
	}
	items, err = removeAt(items, idx)
	if err != nil {
		return err
	}
	return s.save(ctx, KeyPortfolio, items)
}

// Reset removes every stored edit. Subsequent reads return the defaults.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, AllKeys()...); err != nil {
		return fmt.Errorf("resetting content: %w", err)
	}
	s.l.Info("content reset to defaults")
	return nil
}

// Page collects every section for rendering.
func (s *Store) Page(ctx context.Context) (*Page, error) {
	var (
		p   Page
		err error
	)
	if p.Hero, err = s.Section(ctx, Hero); err != nil {
		return nil, err
	}
	if p.About, err = s.Section(ctx, About); err != nil {
		return nil, err
	}
	if p.Contact, err = s.Section(ctx, Contact); err != nil {
		return nil, err
	}
	if p.Footer, err = s.Section(ctx, Footer); err != nil {
		return nil, err
	}
	if p.SkillCategories, err = s.SkillCategories(ctx); err != nil {
		return nil, err
	}
	if p.Achievements, err = s.Achievements(ctx); err != nil {
		return nil, err
	}
	if p.WorkExperience, err = s.WorkExperience(ctx); err != nil {
		return nil, err
	}
	if p.Portfolio, err = s.Portfolio(ctx); err != nil {
		return nil, err
	}
	return &p, nil
}

// load decodes the value under key into v. Missing and malformed values
// report found=false so callers fall back to defaults.
func (s *Store) load(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.l.Warn("ignoring malformed stored content", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.backend.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	s.l.Debug("content saved", zap.String("key", key))
	return nil
}

func loadList[T any](ctx context.Context, s *Store, key string, defaults []T, restore func(int, *T)) ([]T, error) {
	var stored []T
	found, err := s.load(ctx, key, &stored)
	if err != nil {
		return nil, err
	}
	if !found || stored == nil {
		return defaults, nil
	}
	if len(defaults) > 0 {
		for i := range stored {
			restore(i, &stored[i])
		}
	}
	return stored, nil
}

func replaceAt[T any](items []T, idx int, v T) error {
	if idx < 0 || idx >= len(items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	items[idx] = v
	return nil
}

func removeAt[T any](items []T, idx int) ([]T, error) {
	if idx < 0 || idx >= len(items) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, idx)
	}
	return append(items[:idx], items[idx+1:]...), nil
}
