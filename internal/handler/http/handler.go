package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/cmlabs-hris/hris-frontend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/session"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-frontend-go/internal/service/workspace"
	formdecoder "github.com/go-playground/form"
)

var errNoSession = errors.New("request has no session")

// WorkspaceStore hands out the workspace of a session, creating it on
// first use.
type WorkspaceStore interface {
	Get(id string) *workspace.Workspace
}

type EventPublisher interface {
	Publish(sessionID string, event sse.Event)
}

var queryDecoder = formdecoder.NewDecoder()

// decodeQuery fills v from the URL query. Values that do not convert come
// back as validation errors keyed by parameter name.
func decodeQuery(r *http.Request, v any) error {
	err := queryDecoder.Decode(v, r.URL.Query())
	if err == nil {
		return nil
	}

	var decodeErrs formdecoder.DecodeErrors
	if !errors.As(err, &decodeErrs) {
		return fmt.Errorf("failed to decode query: %w", err)
	}
	errs := make(validator.ValidationErrors, 0, len(decodeErrs))
	for field := range decodeErrs {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s has an invalid value", field),
		})
	}
	slices.SortFunc(errs, func(a, b validator.ValidationError) int {
		return strings.Compare(a.Field, b.Field)
	})
	return errs
}

// formValues picks the posted values of the schema's fields.
func formValues(r *http.Request, schema form.Schema) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, validator.ValidationErrors{{Field: "form", Message: "form body could not be read"}}
	}
	values := make(map[string]string, len(schema))
	for _, field := range schema {
		if vs, ok := r.PostForm[field.Name]; ok && len(vs) > 0 {
			values[field.Name] = vs[0]
		}
	}
	return values, nil
}

func currentWorkspace(r *http.Request, store WorkspaceStore) (*workspace.Workspace, error) {
	sid, ok := session.IDFromContext(r.Context())
	if !ok {
		return nil, errNoSession
	}
	return store.Get(sid), nil
}

// ignoreLoadError drops load outcomes that the page shows through the view
// state instead of an error page.
func ignoreLoadError(err error) error {
	if errors.Is(err, listview.ErrFetchFailed) || errors.Is(err, listview.ErrStaleResult) {
		return nil
	}
	return err
}

func applyPaging[R listview.Record, F comparable](view *listview.View[R, F], page, size *int) {
	if size != nil {
		view.SetPageSize(*size)
	}
	if page != nil {
		view.SetPage(*page)
	}
}

// finishMutation redirects back to the list after a submit or delete.
// Validation failures and rejected saves are shown there through the
// dialog and the notice; other errors get an error page.
func finishMutation(w http.ResponseWriter, r *http.Request, rd *renderer, events EventPublisher, ws *workspace.Workspace, err error, base, event string) {
	var validationErrs validator.ValidationErrors
	switch {
	case err == nil:
		events.Publish(ws.ID, sse.Event{SessionID: ws.ID, Name: event})
	case errors.As(err, &validationErrs),
		errors.Is(err, listview.ErrMutationFailed),
		errors.Is(err, listview.ErrDialogClosed):
	default:
		rd.error(w, err, base)
		return
	}
	http.Redirect(w, r, base, http.StatusSeeOther)
}

func listMeta[R any, F any](snap listview.Snapshot[R, F]) *response.Meta {
	return &response.Meta{
		Page:         snap.Page + 1,
		Limit:        snap.PageSize,
		TotalItems:   snap.Total,
		MatchedItems: snap.Matched,
		TotalPages:   snap.PageCount,
	}
}
