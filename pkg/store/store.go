// Package store persists one DayState file per calendar day.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/punch/pkg/timesheet"
)

// Persistence defines the persistence contract for day ledgers. Days are
// keyed by their ISO date, for example "2026-08-25".
type Persistence interface {
	Load(day string) (*timesheet.DayState, error)
	Save(day string, d *timesheet.DayState) error
	Path(day string) string
	Days(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

const fileExt = ".json"

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: dayToPathTransform,
		InverseTransform:  pathToDayTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads the day's state, bootstrapping an empty one when the file does
// not exist yet. Loaded state is validated and self-healed before use.
func (p *persistence) Load(day string) (*timesheet.DayState, error) {
	if !p.d.Has(day) {
		return timesheet.NewDayState(), nil
	}
	data, err := p.d.Read(day)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", day, err)
	}
	d := timesheet.NewDayState()
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", day, err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("store: %s: %w", day, err)
	}
	d.Normalize()
	return d, nil
}

// Save normalizes and rewrites the whole day file. The file is indented so
// the close workflow's manual-edit escape hatch stays practical.
func (p *persistence) Save(day string, d *timesheet.DayState) error {
	d.Normalize()
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}
	if err := p.d.Write(day, data); err != nil {
		return fmt.Errorf("store: write %s: %w", day, err)
	}
	return nil
}

// Path returns where the day's file lives, whether or not it exists yet.
func (p *persistence) Path(day string) string {
	pk := dayToPathTransform(day)
	return filepath.Join(p.basePath, pk.FileName)
}

// Days lists every day with a stored ledger, oldest first.
func (p *persistence) Days(ctx context.Context) []string {
	days := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		days = append(days, key)
	}
	sort.Strings(days)
	return days
}

func dayToPathTransform(day string) *diskv.PathKey {
	return &diskv.PathKey{FileName: day + fileExt}
}

func pathToDayTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, fileExt)
}
