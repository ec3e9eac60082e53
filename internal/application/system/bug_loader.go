package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/bugland/internal/domain/bug"
	"github.com/younwookim/bugland/internal/infrastructure/config"
)

// ErrDuplicateID is returned when two catalog entries share an id
var ErrDuplicateID = errors.New("duplicate bug id")

// Entry is a catalog bug together with its id
type Entry struct {
	ID  string
	Bug *bug.Bug
}

// ParseRows converts character rows into pixel rows.
// With no pixel mapping, '.' and ' ' are background and anything else is 1.
// With a mapping, characters missing from it are background.
func ParseRows(rows []string, pixels map[string]int) [][]int {
	out := make([][]int, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		out[y] = make([]int, len(runes))
		for x, char := range runes {
			out[y][x] = pixelValue(char, pixels)
		}
	}
	return out
}

func pixelValue(char rune, pixels map[string]int) int {
	if len(pixels) == 0 {
		if char == '.' || char == ' ' {
			return 0
		}
		return 1
	}
	return pixels[string(char)]
}

// LoadBug converts a BugConfig into a Bug and applies its transforms
func LoadBug(cfg config.BugConfig) (*bug.Bug, error) {
	name := cfg.Name
	if name == "" {
		name = cfg.ID
	}

	pattern := ParseRows(cfg.Pattern, cfg.Pixels)

	var (
		b   *bug.Bug
		err error
	)
	if len(cfg.Mask) > 0 {
		b, err = bug.NewWithMask(name, pattern, ParseRows(cfg.Mask, cfg.Pixels))
	} else {
		b, err = bug.New(name, pattern)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build bug %s: %w", cfg.ID, err)
	}

	ops, err := ParseOps(cfg.Transforms)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transforms of %s: %w", cfg.ID, err)
	}

	b, err = ApplyOps(b, ops...)
	if err != nil {
		return nil, fmt.Errorf("failed to transform bug %s: %w", cfg.ID, err)
	}
	return b, nil
}

// LoadCatalog builds every bug of a catalog, keeping catalog order
func LoadCatalog(cfg *config.CatalogConfig) ([]Entry, error) {
	seen := make(map[string]struct{}, len(cfg.Bugs))
	entries := make([]Entry, 0, len(cfg.Bugs))

	for _, bc := range cfg.Bugs {
		if _, ok := seen[bc.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, bc.ID)
		}
		seen[bc.ID] = struct{}{}

		b, err := LoadBug(bc)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{ID: bc.ID, Bug: b})
	}
	return entries, nil
}

// FindEntry returns the entry with the given id
func FindEntry(entries []Entry, id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
