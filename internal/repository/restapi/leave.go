package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/leave"
)

type leaveRepositoryImpl struct {
	client *Client
}

func NewLeaveRepository(client *Client) leave.LeaveRepository {
	return &leaveRepositoryImpl{client: client}
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.Leave, error) {
	var leaves []leave.Leave
	if err := r.client.do(ctx, http.MethodGet, resourcePath("leaves"), filter.Values(), nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, uid string) (leave.Leave, error) {
	var l leave.Leave
	if err := r.client.do(ctx, http.MethodGet, resourcePath("leaves", uid), nil, nil, &l); err != nil {
		return leave.Leave{}, err
	}
	return l, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	var leaves []leave.Leave
	if err := r.client.do(ctx, http.MethodGet, resourcePath("leaves", "employee", employeeID), nil, nil, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, newLeave leave.Leave) (leave.Leave, error) {
	newLeave.UID = ""

	var created leave.Leave
	if err := r.client.do(ctx, http.MethodPost, resourcePath("leaves"), nil, newLeave, &created); err != nil {
		return leave.Leave{}, err
	}
	return created, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, uid string, l leave.Leave) (leave.Leave, error) {
	l.UID = ""

	var updated leave.Leave
	if err := r.client.do(ctx, http.MethodPut, resourcePath("leaves", uid), nil, l, &updated); err != nil {
		return leave.Leave{}, err
	}
	return updated, nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, uid string) error {
	return r.client.do(ctx, http.MethodDelete, resourcePath("leaves", uid), nil, nil, nil)
}

// Stats implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Stats(ctx context.Context, employeeID string, year string) (leave.Stats, error) {
	var query url.Values
	if year != "" {
		query = url.Values{"year": {year}}
	}

	var stats leave.Stats
	if err := r.client.do(ctx, http.MethodGet, resourcePath("leaves", "stats", employeeID), query, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
