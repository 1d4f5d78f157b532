package ingredient

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/creasty/defaults"

	"github.com/e11jah/rbt"
	"github.com/e11jah/rbt/internal/logging"
)

// NotFound is returned by CalorieCount for unknown ingredients.
const NotFound = -1

// Config tunes substitute search and data loading.
type Config struct {
	// CalorieWindow is how many calories above the original a substitute may have.
	CalorieWindow int `default:"30"`
	// MaxSubstitutes caps the number of substitutes returned.
	MaxSubstitutes int `default:"3"`
	// HasHeader skips the first row of a data file.
	HasHeader bool `default:"true"`
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("setting config defaults: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings that cannot drive a substitute search.
func (c Config) Validate() error {
	if c.CalorieWindow < 0 {
		return fmt.Errorf("calorie window must not be negative, got %d", c.CalorieWindow)
	}
	if c.MaxSubstitutes < 0 {
		return fmt.Errorf("max substitutes must not be negative, got %d", c.MaxSubstitutes)
	}
	return nil
}

// Backend answers ingredient queries. It is not safe for concurrent use.
type Backend struct {
	cfg         Config
	ingredients *rbt.MultiKeyTree[*Ingredient]
	categories  *rbt.MultiKeyTree[string]
}

func NewBackend(cfg Config) *Backend {
	return &Backend{
		cfg:         cfg,
		ingredients: rbt.NewFunc(ByCalories),
		categories:  rbt.New[string](),
	}
}

// LoadData reads the data file at path. See Load for the format.
func (b *Backend) LoadData(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening ingredient data: %w", err)
	}
	defer f.Close()

	n, err := b.Load(f)
	if err != nil {
		return n, fmt.Errorf("loading %s: %w", path, err)
	}
	logging.Info().Str("path", path).Int("ingredients", n).Msg("loaded ingredient data")
	return n, nil
}

// Load reads rows of the form
//
//	category,name,serving,calories
//
// where calories may carry a unit suffix such as "52 cal" or "23kcal".
// Rows that cannot be parsed are skipped. It returns the number of
// ingredients inserted.
func (b *Backend) Load(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	line := 0
	loaded := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return loaded, nil
		}
		if err != nil {
			return loaded, fmt.Errorf("reading row %d: %w", line+1, err)
		}
		line++
		if line == 1 && b.cfg.HasHeader {
			continue
		}

		ingredient, err := parseRecord(record)
		if err != nil {
			logging.Warn().Err(err).Int("row", line).Strs("record", record).Msg("skipping ingredient row")
			continue
		}
		if err := b.InsertIngredient(ingredient); err != nil {
			return loaded, err
		}
		loaded++
	}
}

func parseRecord(record []string) (*Ingredient, error) {
	if len(record) < 4 {
		return nil, fmt.Errorf("expected 4 fields, got %d", len(record))
	}

	category := strings.TrimSpace(record[0])
	name := strings.TrimSpace(record[1])
	if category == "" || name == "" {
		return nil, errors.New("empty category or name")
	}

	digits := strings.TrimRightFunc(strings.TrimSpace(record[3]), func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	calories, err := strconv.Atoi(digits)
	if err != nil {
		return nil, fmt.Errorf("parsing calories %q: %w", record[3], err)
	}
	return New(category, name, calories), nil
}

// InsertIngredient adds ingredient to both trees.
func (b *Backend) InsertIngredient(ingredient *Ingredient) error {
	if ingredient == nil {
		return rbt.ErrNullKey
	}
	if _, err := b.ingredients.InsertSingleKey(ingredient); err != nil {
		return err
	}
	if _, err := b.categories.InsertSingleKey(ingredient.category); err != nil {
		return err
	}
	return nil
}

func (b *Backend) byName(name string) *Ingredient {
	b.ingredients.ClearStartPoint()
	for ingredient := range b.ingredients.All() {
		if ingredient.name == name {
			return ingredient
		}
	}
	return nil
}

// NameSubstitutes returns up to MaxSubstitutes ingredients of the same
// category as the named one whose calories are at least its calories and at
// most CalorieWindow above. The result is empty when the name is unknown.
func (b *Backend) NameSubstitutes(name string) []*Ingredient {
	substitutes := make([]*Ingredient, 0, max(b.cfg.MaxSubstitutes, 0))

	original := b.byName(name)
	if original == nil {
		logging.Debug().Str("name", name).Msg("ingredient not found")
		return substitutes
	}

	b.ingredients.SetStartPoint(original)
	defer b.ingredients.ClearStartPoint()

	threshold := original.calories + b.cfg.CalorieWindow
	for candidate := range b.ingredients.All() {
		if candidate.calories > threshold || len(substitutes) >= b.cfg.MaxSubstitutes {
			break
		}
		if candidate.name == original.name || candidate.category != original.category {
			continue
		}
		substitutes = append(substitutes, candidate)
	}
	return substitutes
}

// CalorieCount returns the calories of the named ingredient or NotFound.
func (b *Backend) CalorieCount(name string) int {
	if ingredient := b.byName(name); ingredient != nil {
		return ingredient.calories
	}
	return NotFound
}

// IngredientCount returns the number of ingredients, duplicates included.
func (b *Backend) IngredientCount() int {
	return b.categories.NumKeys()
}

// CategoryCount returns the number of distinct categories.
func (b *Backend) CategoryCount() int {
	return b.categories.Size()
}

func (b *Backend) ClearData() {
	b.ingredients.Clear()
	b.categories.Clear()
}
