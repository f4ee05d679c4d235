package listview

import "errors"

var (
	ErrFetchFailed       = errors.New("could not load records")
	ErrMutationFailed    = errors.New("could not save changes")
	ErrMutationInFlight  = errors.New("another change is still being saved")
	ErrNotConfirmed      = errors.New("delete was not confirmed")
	ErrRecordNotFound    = errors.New("record not found in the current list")
	ErrMissingIdentity   = errors.New("record has no identifier")
	ErrDialogClosed      = errors.New("no record is being edited")
	ErrStaleResult       = errors.New("result discarded by a newer request")
	ErrViewClosed        = errors.New("view is no longer active")
	ErrInvalidTransition = errors.New("invalid state transition")
)
