package leave

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-frontend-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/form"
	"github.com/cmlabs-hris/hris-frontend-go/internal/pkg/listview"
	"golang.org/x/sync/errgroup"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	now       func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo: leaveRepo,
		now:       time.Now,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) ([]leave.Leave, error) {
	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}
	return leaves, nil
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, draft form.Draft) error {
	newLeave, err := leave.FromDraft(draft)
	if err != nil {
		return err
	}

	if _, err := s.leaveRepo.Create(ctx, newLeave); err != nil {
		return fmt.Errorf("failed to create leave: %w", err)
	}
	return nil
}

// Update implements leave.LeaveService.
func (s *LeaveServiceImpl) Update(ctx context.Context, uid string, draft form.Draft) error {
	l, err := leave.FromDraft(draft)
	if err != nil {
		return err
	}

	if _, err := s.leaveRepo.Update(ctx, uid, l); err != nil {
		return fmt.Errorf("failed to update leave %s: %w", uid, err)
	}
	return nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, uid string) error {
	if err := s.leaveRepo.Delete(ctx, uid); err != nil {
		return fmt.Errorf("failed to delete leave %s: %w", uid, err)
	}
	return nil
}

// Identity implements leave.LeaveService.
func (s *LeaveServiceImpl) Identity(l leave.Leave) string {
	return l.UID
}

// Form implements leave.LeaveService.
func (s *LeaveServiceImpl) Form(l *leave.Leave) *form.Form {
	if l == nil {
		return form.New(leave.Schema, leave.BlankDraft(s.now()))
	}
	return form.New(leave.Schema, leave.ToDraft(*l, s.now()))
}

// GetLeave implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeave(ctx context.Context, uid string) (leave.Leave, error) {
	if strings.TrimSpace(uid) == "" {
		return leave.Leave{}, listview.ErrMissingIdentity
	}

	l, err := s.leaveRepo.GetByID(ctx, uid)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to get leave %s: %w", uid, err)
	}
	return l, nil
}

// GetStats implements leave.LeaveService.
func (s *LeaveServiceImpl) GetStats(ctx context.Context, req leave.StatsRequest) (leave.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.StatsResponse{}, err
	}

	resp := leave.StatsResponse{
		EmployeeID: req.EmployeeID,
		Year:       req.Year,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.leaveRepo.Stats(gCtx, req.EmployeeID, req.Year)
		if err != nil {
			return fmt.Errorf("failed to get leave stats for %s: %w", req.EmployeeID, err)
		}
		resp.Stats = stats
		return nil
	})

	g.Go(func() error {
		leaves, err := s.leaveRepo.ListByEmployee(gCtx, req.EmployeeID)
		if err != nil {
			return fmt.Errorf("failed to list leaves for %s: %w", req.EmployeeID, err)
		}
		resp.Leaves = leaves
		return nil
	})

	if err := g.Wait(); err != nil {
		return leave.StatsResponse{}, err
	}

	return resp, nil
}
