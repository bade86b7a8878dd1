package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"wortschatz/internal/domain"
	"wortschatz/internal/pagination"
	"wortschatz/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
)

// recentLimit is the size of the recent-words list
const recentLimit = 10

// ErrPageOutOfRange is returned for page numbers below 1
var ErrPageOutOfRange = errors.New("page out of range")

// WordListSnapshot is a consistent copy of the controller state for rendering
type WordListSnapshot struct {
	Page       domain.PageState
	Words      []domain.Word
	Visible    []domain.Word
	Categories []domain.Category
	Recent     []domain.Word
	Loading    bool
	Err        string
	Controls   pagination.Controls
}

// WordList owns the browsing state of one chat: the loaded page, the filter,
// the local search term, the category list and the recent words.
//
// Only the result of the most recently started page fetch is applied. Each fetch
// takes a generation number at dispatch; responses carrying an older one are dropped.
// The page number and category in state change together with the words and total,
// so a snapshot taken mid-fetch still describes the previous page.
type WordList struct {
	store  repository.WordStore
	logger *zap.Logger

	mu    sync.Mutex
	state domain.PageState
	// filter is the most recently requested category; state holds the applied one
	filter     *int
	words      []domain.Word
	categories []domain.Category
	recent     []domain.Word
	generation uint64
	loading    bool
	err        string
}

// NewWordList creates a controller showing perPage words per page
func NewWordList(store repository.WordStore, perPage int, logger *zap.Logger) *WordList {
	if perPage <= 0 {
		perPage = 20
	}
	return &WordList{
		store:  store,
		logger: logger,
		state:  domain.PageState{PageNumber: 1, WordsPerPage: perPage},
	}
}

// Load performs the initial load: page 1, categories and recent words in parallel.
// Only the page fetch can fail the load.
func (l *WordList) Load(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return l.fetchPage(ctx, 1) })
	g.Go(func() error { l.refreshCategories(ctx); return nil })
	g.Go(func() error { l.refreshRecent(ctx); return nil })
	return g.Wait()
}

// SetCategory switches the filter (nil for all words) and loads its first page
func (l *WordList) SetCategory(ctx context.Context, categoryID *int) error {
	l.mu.Lock()
	l.filter = copyID(categoryID)
	l.mu.Unlock()

	return l.fetchPage(ctx, 1)
}

// ChangePage loads page n under the current filter
func (l *WordList) ChangePage(ctx context.Context, n int) error {
	if n < 1 {
		return ErrPageOutOfRange
	}
	return l.fetchPage(ctx, n)
}

// SetSearch sets the local search term. It never fetches.
func (l *WordList) SetSearch(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state.SearchTerm = term
}

// WordCreated clears the search and reloads page 1 and the recent words
func (l *WordList) WordCreated(ctx context.Context) error {
	l.SetSearch("")
	return l.reloadFirstPage(ctx)
}

// WordUpdated reloads page 1 of the current filter and the recent words
func (l *WordList) WordUpdated(ctx context.Context) error {
	return l.reloadFirstPage(ctx)
}

// WordDeleted reloads the current page and the recent words
func (l *WordList) WordDeleted(ctx context.Context) error {
	l.mu.Lock()
	page := l.state.PageNumber
	l.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error { return l.fetchPage(ctx, page) })
	g.Go(func() error { l.refreshRecent(ctx); return nil })
	return g.Wait()
}

// CategoryCreated reloads the category list only
func (l *WordList) CategoryCreated(ctx context.Context) {
	l.refreshCategories(ctx)
}

func (l *WordList) reloadFirstPage(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return l.fetchPage(ctx, 1) })
	g.Go(func() error { l.refreshRecent(ctx); return nil })
	return g.Wait()
}

// fetchPage loads page under the current filter. A stale result returns nil.
func (l *WordList) fetchPage(ctx context.Context, page int) error {
	l.mu.Lock()
	l.generation++
	gen := l.generation
	perPage := l.state.WordsPerPage
	categoryID := copyID(l.filter)
	l.loading = true
	l.mu.Unlock()

	result, err := l.store.ListWords(ctx, page, perPage, categoryID)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		l.logger.Debug("Dropping stale page",
			zap.Int("page", page),
			zap.Uint64("generation", gen),
			zap.Uint64("current", l.generation))
		return nil
	}

	l.loading = false
	l.state.PageNumber = page
	l.state.SelectedCategory = categoryID
	if err != nil {
		l.words = nil
		l.state.TotalWords = 0
		l.err = domain.UserMessage(err)
		l.logger.Warn("Failed to load words", zap.Int("page", page), zap.Error(err))
		return err
	}

	l.err = ""
	l.words = result.Words
	l.state.TotalWords = result.TotalCount
	return nil
}

func (l *WordList) refreshCategories(ctx context.Context) {
	categories, err := l.store.ListCategories(ctx)
	if err != nil {
		l.logger.Warn("Failed to refresh categories", zap.Error(err))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.categories = categories
}

func (l *WordList) refreshRecent(ctx context.Context) {
	recent, err := l.store.ListRecentWords(ctx, recentLimit)
	if err != nil {
		l.logger.Warn("Failed to refresh recent words", zap.Error(err))
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.recent = recent
}

// Visible returns the loaded words matching the search term
func (l *WordList) Visible() []domain.Word {
	l.mu.Lock()
	defer l.mu.Unlock()
	return filterWords(l.words, l.state.SearchTerm)
}

// Word returns a loaded word by id
func (l *WordList) Word(id int) (domain.Word, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, w := range l.words {
		if w.ID == id {
			return w, true
		}
	}
	for _, w := range l.recent {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Word{}, false
}

// Categories returns the last loaded category list
func (l *WordList) Categories() []domain.Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.Category(nil), l.categories...)
}

// Snapshot returns a copy of the current state
func (l *WordList) Snapshot() WordListSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	page := l.state
	page.SelectedCategory = copyID(l.state.SelectedCategory)
	totalPages := pagination.TotalPages(page.TotalWords, page.WordsPerPage)

	return WordListSnapshot{
		Page:       page,
		Words:      append([]domain.Word(nil), l.words...),
		Visible:    filterWords(l.words, l.state.SearchTerm),
		Categories: append([]domain.Category(nil), l.categories...),
		Recent:     append([]domain.Word(nil), l.recent...),
		Loading:    l.loading,
		Err:        l.err,
		Controls:   pagination.Present(page.PageNumber, totalPages),
	}
}

func filterWords(words []domain.Word, term string) []domain.Word {
	needle := cases.Fold().String(strings.TrimSpace(term))
	out := make([]domain.Word, 0, len(words))
	for _, w := range words {
		if needle == "" || strings.Contains(cases.Fold().String(w.GermanWord), needle) {
			out = append(out, w)
		}
	}
	return out
}

func copyID(id *int) *int {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
