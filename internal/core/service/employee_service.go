package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// EmployeeService serves the employee self-service dashboard.
type EmployeeService struct {
	backend ports.HRBackend
	log     zerolog.Logger
}

func NewEmployeeService(backend ports.HRBackend, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{backend: backend, log: log}
}

// MyProfile fetches the caller's full aggregate and returns a fresh
// normalized snapshot.
func (s *EmployeeService) MyProfile(ctx context.Context, tok string) (*domain.EmployeeViewModel, error) {
	raw, err := s.backend.FetchMyProfile(ctx, tok)
	if err != nil {
		return nil, err
	}
	return NormalizeProfile(raw)
}

// RequestLeave creates a leave request for the caller. The status is always
// PENDING on creation; approval is an HR action.
func (s *EmployeeService) RequestLeave(ctx context.Context, tok string, in ports.NewLeaveRequestInput) (*domain.LeaveRequest, error) {
	created, err := s.backend.CreateLeaveRequest(ctx, tok, in)
	if err != nil {
		return nil, err
	}
	leave := NormalizeLeaveRequest(*created)
	return &leave, nil
}
