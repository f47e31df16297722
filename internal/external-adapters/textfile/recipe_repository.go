package textfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/ochairo/receptbok/internal/domain/entities"
	"github.com/ochairo/receptbok/internal/domain/interfaces"
	"github.com/ochairo/receptbok/internal/domain/interfaces/gateways"
	"github.com/ochairo/receptbok/internal/domain/interfaces/repositories"
)

var _ repositories.RecipeRepository = (*RecipeRepository)(nil)

// SignatureExtensions are tried in order next to the recipe file
var SignatureExtensions = []string{".asc", ".sig"}

// RecipeRepository implements repositories.RecipeRepository on top of a
// single recipe file. It is not safe for concurrent use.
type RecipeRepository struct {
	path             string
	parser           *RecipeParser
	logger           interfaces.Logger
	verifier         gateways.SignatureVerifier
	requireSignature bool

	recipes  []*entities.Recipe
	modified bool

	handlers []subscription
	nextID   int
}

type subscription struct {
	id int
	fn func()
}

// Option configures a RecipeRepository
type Option func(*RecipeRepository)

// WithLogger sets the logger
func WithLogger(logger interfaces.Logger) Option {
	return func(r *RecipeRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCollator sets the ordering applied on Load
func WithCollator(c gateways.Collator) Option {
	return func(r *RecipeRepository) {
		r.parser = NewRecipeParserWithCollator(c)
	}
}

// WithVerifier makes Load check a detached signature next to the recipe
// file. When required is true a missing signature fails the load.
func WithVerifier(v gateways.SignatureVerifier, required bool) Option {
	return func(r *RecipeRepository) {
		r.verifier = v
		r.requireSignature = required
	}
}

// NewRecipeRepository creates an empty repository backed by path
func NewRecipeRepository(path string, opts ...Option) *RecipeRepository {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	r := &RecipeRepository{
		path:   path,
		parser: NewRecipeParser(),
		logger: &interfaces.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the absolute location of the backing file
func (r *RecipeRepository) Path() string {
	return r.path
}

// Load reads the backing file once, checks its signature when a verifier
// is set and parses the same bytes. The collection is replaced only if
// every step succeeds.
func (r *RecipeRepository) Load() error {
	r.logger.Debug("Loading recipes", interfaces.F("path", r.path))

	//nolint:gosec // G304: path is the configured recipe file
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.logger.Error("Failed to read recipe file", interfaces.F("path", r.path), interfaces.F("error", err))
		return &entities.IOError{Op: "read", Path: r.path, Err: err}
	}

	if err := r.checkSignature(data); err != nil {
		r.logger.Error("Signature check failed", interfaces.F("path", r.path), interfaces.F("error", err))
		return err
	}

	recipes, err := r.parser.ParseBytes(data)
	if err != nil {
		var formatErr *entities.FormatError
		if errors.As(err, &formatErr) {
			r.logger.Error("Malformed recipe file",
				interfaces.F("path", r.path),
				interfaces.F("line", formatErr.Line),
				interfaces.F("reason", formatErr.Reason))
		}
		return err
	}

	r.recipes = recipes
	r.modified = false
	r.logger.Info("Loaded recipes", interfaces.F("path", r.path), interfaces.F("count", len(recipes)))
	r.notify()

	return nil
}

func (r *RecipeRepository) checkSignature(data []byte) error {
	if r.verifier == nil {
		return nil
	}

	sigPath, found := FindSignature(r.path)
	if !found {
		if r.requireSignature {
			return fmt.Errorf("%w: no signature found for %s", entities.ErrSignature, r.path)
		}
		r.logger.Warn("Recipe file is not signed", interfaces.F("path", r.path))
		return nil
	}

	if err := r.verifier.VerifySignature(bytes.NewReader(data), sigPath); err != nil {
		return fmt.Errorf("%w: %s: %w", entities.ErrSignature, sigPath, err)
	}

	r.logger.Debug("Signature verified", interfaces.F("signature", sigPath))
	return nil
}

// FindSignature returns the first existing signature file for path
func FindSignature(path string) (string, bool) {
	for _, ext := range SignatureExtensions {
		candidate := path + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// Save appends the serialized recipe to the backing file, creating the file
// and its directory if needed. Previously written recipes are never touched.
// Recipes that would not read back fail with entities.ErrInvalid before the
// file is opened.
func (r *RecipeRepository) Save(recipe *entities.Recipe) (err error) {
	// A block that does not parse would make the whole file unloadable
	if err := recipe.Validate(); err != nil {
		return err
	}

	if mkErr := os.MkdirAll(filepath.Dir(r.path), 0750); mkErr != nil {
		return &entities.IOError{Op: "create directory for", Path: r.path, Err: mkErr}
	}

	//nolint:gosec // G304: path is the configured recipe file
	f, err := os.OpenFile(r.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0600)
	if err != nil {
		return &entities.IOError{Op: "open", Path: r.path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &entities.IOError{Op: "close", Path: r.path, Err: closeErr}
		}
	}()

	needsNewline, err := endsWithoutNewline(f)
	if err != nil {
		return &entities.IOError{Op: "read", Path: r.path, Err: err}
	}
	if needsNewline {
		if _, err := f.WriteString("\n"); err != nil {
			return &entities.IOError{Op: "write", Path: r.path, Err: err}
		}
	}

	if err := WriteRecipe(f, recipe); err != nil {
		return &entities.IOError{Op: "write", Path: r.path, Err: err}
	}

	r.logger.Info("Saved recipe", interfaces.F("path", r.path), interfaces.F("name", recipe.Name))
	r.notify()

	return nil
}

// endsWithoutNewline reports whether a non-empty file lacks a trailing newline
func endsWithoutNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return last[0] != '\n', nil
}

// GetAll returns deep copies of all recipes in canonical order
func (r *RecipeRepository) GetAll() []*entities.Recipe {
	return entities.CloneRecipes(r.recipes)
}

// GetAt returns a deep copy of the recipe at index
func (r *RecipeRepository) GetAt(index int) (*entities.Recipe, error) {
	if err := r.checkIndex(index); err != nil {
		return nil, err
	}
	return r.recipes[index].Clone(), nil
}

// Delete removes recipe from the collection. A recipe that is not one of
// the canonical instances is matched by value; the first equal entry in
// canonical order is removed.
func (r *RecipeRepository) Delete(recipe *entities.Recipe) {
	idx := r.indexOf(recipe)
	if idx < 0 {
		r.logger.Debug("Delete matched no recipe")
		return
	}
	r.removeAt(idx)
}

// DeleteAt removes the recipe at index
func (r *RecipeRepository) DeleteAt(index int) error {
	if err := r.checkIndex(index); err != nil {
		return err
	}
	r.Delete(r.recipes[index])
	return nil
}

func (r *RecipeRepository) indexOf(recipe *entities.Recipe) int {
	if recipe == nil {
		return -1
	}
	for i, c := range r.recipes {
		if c == recipe {
			return i
		}
	}
	return slices.IndexFunc(r.recipes, recipe.Equal)
}

func (r *RecipeRepository) removeAt(idx int) {
	name := r.recipes[idx].Name
	r.recipes = slices.Delete(r.recipes, idx, idx+1)
	r.modified = true
	r.logger.Info("Deleted recipe", interfaces.F("name", name), interfaces.F("index", idx))
	r.notify()
}

// Append adds a copy of recipe at the end of the collection. Order is
// restored on the next Load.
func (r *RecipeRepository) Append(recipe *entities.Recipe) {
	if recipe == nil {
		return
	}
	r.recipes = append(r.recipes, recipe.Clone())
	r.modified = true
	r.logger.Debug("Appended recipe", interfaces.F("name", recipe.Name))
	r.notify()
}

// Len returns the number of recipes in the collection
func (r *RecipeRepository) Len() int {
	return len(r.recipes)
}

// IsModified reports whether the collection changed since the last Load
func (r *RecipeRepository) IsModified() bool {
	return r.modified
}

// OnChanged registers handler and returns a func that removes it
func (r *RecipeRepository) OnChanged(handler func()) func() {
	if handler == nil {
		return func() {}
	}
	id := r.nextID
	r.nextID++
	r.handlers = append(r.handlers, subscription{id: id, fn: handler})

	return func() {
		r.handlers = slices.DeleteFunc(r.handlers, func(s subscription) bool {
			return s.id == id
		})
	}
}

func (r *RecipeRepository) notify() {
	// Handlers may unsubscribe while being called
	for _, s := range slices.Clone(r.handlers) {
		s.fn()
	}
}

func (r *RecipeRepository) checkIndex(index int) error {
	if index < 0 || index >= len(r.recipes) {
		return &entities.OutOfRangeError{Index: index, Len: len(r.recipes)}
	}
	return nil
}
