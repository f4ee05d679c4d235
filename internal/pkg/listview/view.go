// Package listview is the state container behind a resource list page: the
// fetched collection, client-side search, paging, and the edit dialog.
package listview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
)

// Resource is the data source of a View. Filters of type F are applied by
// the server; search is applied locally.
type Resource[R Record, F comparable] interface {
	List(ctx context.Context, filter F) ([]R, error)
	Create(ctx context.Context, draft form.Draft) error
	Update(ctx context.Context, id string, draft form.Draft) error
	Delete(ctx context.Context, id string) error
	// Identity is the id passed to Update and Delete.
	Identity(rec R) string
	// Form returns an edit form seeded from rec, or a blank one for nil.
	Form(rec *R) *form.Form
}

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is a one-shot message for the user about the last mutation.
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

type Row[R any] struct {
	Key    string `json:"key"`
	ID     string `json:"id"`
	Record R      `json:"record"`
}

type Dialog struct {
	Editing bool              `json:"editing"`
	Key     string            `json:"key,omitempty"`
	Fields  []form.FieldValue `json:"fields"`
}

type Snapshot[R any, F any] struct {
	State     State    `json:"state"`
	Error     string   `json:"error,omitempty"`
	Filter    F        `json:"filter"`
	Search    string   `json:"search"`
	Total     int      `json:"total"`
	Matched   int      `json:"matched"`
	Rows      []Row[R] `json:"rows"`
	Page      int      `json:"page"`
	PageSize  int      `json:"page_size"`
	PageCount int      `json:"page_count"`
	PageSizes []int    `json:"page_sizes"`
	HasPrev   bool     `json:"has_prev"`
	HasNext   bool     `json:"has_next"`
	Dialog    *Dialog  `json:"dialog,omitempty"`
}

type options struct {
	noun      string
	pageSizes []int
	pageSize  int
	logger    *slog.Logger
}

type Option func(*options)

// WithNoun names the resource in notices and synthetic row keys.
func WithNoun(noun string) Option {
	return func(o *options) { o.noun = noun }
}

// WithPageSizes sets the selectable page sizes and the initial one.
func WithPageSizes(sizes []int, initial int) Option {
	return func(o *options) {
		if len(sizes) > 0 {
			o.pageSizes = sizes
		}
		if initial > 0 {
			o.pageSize = initial
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

type View[R Record, F comparable] struct {
	resource Resource[R, F]
	opts     options

	mu         sync.Mutex
	state      State
	err        error
	rows       []Row[R]
	filter     F
	search     string
	page       int
	pageSize   int
	generation uint64
	closed     bool
	mutating   bool

	selected *Row[R]
	dialog   *form.Form
	notice   *Notice
}

func New[R Record, F comparable](resource Resource[R, F], opts ...Option) *View[R, F] {
	o := options{
		noun:      "record",
		pageSizes: DefaultPageSizes,
		pageSize:  DefaultPageSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !containsSize(o.pageSizes, o.pageSize) {
		o.pageSize = o.pageSizes[0]
	}

	return &View[R, F]{
		resource: resource,
		opts:     o,
		pageSize: o.pageSize,
	}
}

// Mount loads the collection the first time the view is shown.
func (v *View[R, F]) Mount(ctx context.Context) error {
	v.mu.Lock()
	idle := v.state == Idle
	v.mu.Unlock()

	if !idle {
		return nil
	}
	return v.Refresh(ctx)
}

// Refresh replaces the collection with a fresh server list. Results that
// arrive after Close or after a newer Refresh are dropped.
func (v *View[R, F]) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	v.generation++
	gen := v.generation
	filter := v.filter
	v.transition(EventFetch)
	v.mu.Unlock()

	records, err := v.resource.List(ctx, filter)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || gen != v.generation {
		return ErrStaleResult
	}
	if err != nil {
		v.transition(EventFail)
		v.rows = nil
		v.err = fmt.Errorf("%w: %w", ErrFetchFailed, err)
		v.opts.logger.Error("List refresh failed", "resource", v.opts.noun, "error", err)
		return v.err
	}

	v.transition(EventSucceed)
	v.rows = v.keyRows(records)
	v.err = nil
	v.page = ClampPage(len(v.filteredLocked()), v.page, v.pageSize)
	return nil
}

// SetFilter changes the server-side filter. The collection is refetched
// only when the filter actually changes or nothing was loaded yet.
func (v *View[R, F]) SetFilter(ctx context.Context, filter F) error {
	v.mu.Lock()
	if v.state != Idle && v.filter == filter {
		v.mu.Unlock()
		return nil
	}
	v.filter = filter
	v.page = 0
	v.mu.Unlock()

	return v.Refresh(ctx)
}

// ClearFilters resets the server filter and the search term.
func (v *View[R, F]) ClearFilters(ctx context.Context) error {
	var zero F
	v.mu.Lock()
	v.search = ""
	v.mu.Unlock()

	return v.SetFilter(ctx, zero)
}

func (v *View[R, F]) Filter() F {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

// SetSearch changes the client-side search term. It never fetches.
func (v *View[R, F]) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if term == v.search {
		return
	}
	v.search = term
	v.page = 0
}

func (v *View[R, F]) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = ClampPage(len(v.filteredLocked()), page, v.pageSize)
}

// SetPageSize switches to one of the configured sizes and returns to the
// first page. Unknown sizes are ignored.
func (v *View[R, F]) SetPageSize(size int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !containsSize(v.opts.pageSizes, size) {
		return false
	}
	if size != v.pageSize {
		v.pageSize = size
		v.page = 0
	}
	return true
}

// Filtered returns every record matching the search term.
func (v *View[R, F]) Filtered() []R {
	v.mu.Lock()
	defer v.mu.Unlock()
	rows := v.filteredLocked()
	out := make([]R, len(rows))
	for i, row := range rows {
		out[i] = row.Record
	}
	return out
}

func (v *View[R, F]) Snapshot() Snapshot[R, F] {
	v.mu.Lock()
	defer v.mu.Unlock()

	filtered := v.filteredLocked()
	start, end, page := Window(len(filtered), v.page, v.pageSize)
	pages := PageCount(len(filtered), v.pageSize)

	snap := Snapshot[R, F]{
		State:     v.state,
		Filter:    v.filter,
		Search:    v.search,
		Total:     len(v.rows),
		Matched:   len(filtered),
		Rows:      append([]Row[R](nil), filtered[start:end]...),
		Page:      page,
		PageSize:  v.pageSize,
		PageCount: pages,
		PageSizes: append([]int(nil), v.opts.pageSizes...),
		HasPrev:   page > 0,
		HasNext:   page+1 < pages,
	}
	if v.err != nil {
		snap.Error = v.err.Error()
	}
	if v.dialog != nil {
		d := &Dialog{Fields: v.dialog.Fields()}
		if v.selected != nil {
			d.Editing = true
			d.Key = v.selected.Key
		}
		snap.Dialog = d
	}
	return snap
}

// TakeNotice returns the pending notice and clears it.
func (v *View[R, F]) TakeNotice() *Notice {
	v.mu.Lock()
	defer v.mu.Unlock()
	n := v.notice
	v.notice = nil
	return n
}

// Edit opens the dialog for the row with the given key.
func (v *View[R, F]) Edit(key string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.rows {
		if v.rows[i].Key == key {
			row := v.rows[i]
			v.selected = &row
			v.dialog = v.resource.Form(&row.Record)
			return nil
		}
	}
	return ErrRecordNotFound
}

// Create opens the dialog with a blank draft.
func (v *View[R, F]) Create() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = nil
	v.dialog = v.resource.Form(nil)
}

func (v *View[R, F]) CloseDialog() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected = nil
	v.dialog = nil
}

// Submit applies values to the open draft and saves it: an update when a
// record is selected, otherwise a create. Required fields are checked first
// and nothing is sent when they are missing. On failure the dialog stays
// open with the draft intact.
func (v *View[R, F]) Submit(ctx context.Context, values map[string]string) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	dialog := v.dialog
	if dialog == nil {
		v.mu.Unlock()
		return ErrDialogClosed
	}
	if v.mutating {
		v.mu.Unlock()
		return ErrMutationInFlight
	}

	dialog.SetAll(values)
	if err := dialog.Validate(); err != nil {
		v.mu.Unlock()
		return err
	}
	draft := dialog.Draft()

	editing := v.selected != nil
	var id string
	if editing {
		id = v.resource.Identity(v.selected.Record)
		if strings.TrimSpace(id) == "" {
			v.notice = &Notice{Level: LevelError, Message: fmt.Sprintf("Failed to update %s", v.opts.noun)}
			v.mu.Unlock()
			return fmt.Errorf("%w: %w", ErrMutationFailed, ErrMissingIdentity)
		}
	}
	v.mutating = true
	v.mu.Unlock()

	var err error
	verb := "create"
	if editing {
		verb = "update"
		err = v.resource.Update(ctx, id, draft)
	} else {
		err = v.resource.Create(ctx, draft)
	}

	v.mu.Lock()
	v.mutating = false
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			dialog.Reject(verrs)
			v.mu.Unlock()
			return verrs
		}
		v.notice = &Notice{Level: LevelError, Message: fmt.Sprintf("Failed to %s %s", verb, v.opts.noun)}
		v.mu.Unlock()
		v.opts.logger.Error("Submit failed", "resource", v.opts.noun, "action", verb, "id", id, "error", err)
		return fmt.Errorf("%w: %w", ErrMutationFailed, err)
	}

	if v.dialog == dialog {
		v.dialog = nil
		v.selected = nil
	}
	v.notice = &Notice{Level: LevelSuccess, Message: fmt.Sprintf("%s %sd successfully", capitalize(v.opts.noun), verb)}
	v.mu.Unlock()

	v.refreshAfterMutation(ctx)
	return nil
}

// Delete removes the record with the given id once the user has
// confirmed. The collection is only changed by the refresh that follows a
// successful delete.
func (v *View[R, F]) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if strings.TrimSpace(id) == "" {
		return ErrMissingIdentity
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrViewClosed
	}
	if v.mutating {
		v.mu.Unlock()
		return ErrMutationInFlight
	}
	v.mutating = true
	v.mu.Unlock()

	err := v.resource.Delete(ctx, id)

	v.mu.Lock()
	v.mutating = false
	if err != nil {
		v.notice = &Notice{Level: LevelError, Message: fmt.Sprintf("Failed to delete %s", v.opts.noun)}
		v.mu.Unlock()
		v.opts.logger.Error("Delete failed", "resource", v.opts.noun, "id", id, "error", err)
		return fmt.Errorf("%w: %w", ErrMutationFailed, err)
	}
	v.notice = &Notice{Level: LevelSuccess, Message: fmt.Sprintf("%s deleted successfully", capitalize(v.opts.noun))}
	v.mu.Unlock()

	v.refreshAfterMutation(ctx)
	return nil
}

// Close deactivates the view. Pending fetches no longer update it.
func (v *View[R, F]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.dialog = nil
	v.selected = nil
}

func (v *View[R, F]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View[R, F]) refreshAfterMutation(ctx context.Context) {
	err := v.Refresh(ctx)
	if err != nil && !errors.Is(err, ErrStaleResult) && !errors.Is(err, ErrViewClosed) {
		v.opts.logger.Warn("Refresh after change failed", "resource", v.opts.noun, "error", err)
	}
}

func (v *View[R, F]) transition(e Event) {
	next, err := v.state.Next(e)
	if err != nil {
		v.opts.logger.Error("List state machine rejected event", "resource", v.opts.noun, "error", err)
		return
	}
	v.state = next
}

func (v *View[R, F]) filteredLocked() []Row[R] {
	if strings.TrimSpace(v.search) == "" {
		return v.rows
	}
	out := make([]Row[R], 0, len(v.rows))
	for _, row := range v.rows {
		if Matches(row.Record, v.search) {
			out = append(out, row)
		}
	}
	return out
}

// keyRows assigns display keys. Records without a key get a positional
// one; positional or repeated keys are logged since they are not stable
// across refreshes.
func (v *View[R, F]) keyRows(records []R) []Row[R] {
	rows := make([]Row[R], len(records))
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		key := rec.RowKey()
		if key == "" {
			key = fmt.Sprintf("%s-%d", v.opts.noun, i)
			v.opts.logger.Warn("Record has no row key, using position", "resource", v.opts.noun, "index", i)
		}
		if first, dup := seen[key]; dup {
			v.opts.logger.Warn("Duplicate row key", "resource", v.opts.noun, "key", key, "first_index", first, "index", i)
			key = uniqueKey(seen, fmt.Sprintf("%s-%d", key, i))
		}
		seen[key] = i
		rows[i] = Row[R]{
			Key:    key,
			ID:     v.resource.Identity(rec),
			Record: rec,
		}
	}
	return rows
}

// uniqueKey appends "-<n>" to key until it is unused.
func uniqueKey(seen map[string]int, key string) string {
	candidate := key
	for n := 2; ; n++ {
		if _, taken := seen[candidate]; !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", key, n)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
