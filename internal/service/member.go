package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/minjaeee24/JDBC-Workspace/internal/domain"
)

// MemberService routes member requests from the console to the record store.
type MemberService struct {
	members domain.MemberRepository
}

// NewMemberService creates a new MemberService.
func NewMemberService(members domain.MemberRepository) *MemberService {
	return &MemberService{members: members}
}

// Register validates a candidate and inserts it. A zero row count from the
// store is reported as an error so callers never mistake it for success.
func (s *MemberService) Register(ctx context.Context, m *domain.Member) (int64, error) {
	if strings.TrimSpace(m.LoginID) == "" || m.Password == "" || strings.TrimSpace(m.Name) == "" {
		return 0, fmt.Errorf("%w: login id, password, and name are required", domain.ErrInvalidInput)
	}
	if m.Gender != domain.GenderMale && m.Gender != domain.GenderFemale {
		return 0, fmt.Errorf("%w: gender must be M or F", domain.ErrInvalidInput)
	}
	if m.Age < 0 {
		return 0, fmt.Errorf("%w: age must not be negative", domain.ErrInvalidInput)
	}

	n, err := s.members.Insert(ctx, m)
	if err != nil {
		return 0, fmt.Errorf("register member: %w", err)
	}
	if n == 0 {
		return 0, fmt.Errorf("register member: %w: no rows inserted", domain.ErrStatement)
	}
	return n, nil
}

// List returns every member.
func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.members.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// FindByLoginID returns the member with the given login id, or
// domain.ErrNotFound.
func (s *MemberService) FindByLoginID(ctx context.Context, loginID string) (*domain.Member, error) {
	m, ok, err := s.members.SelectByLoginID(ctx, loginID)
	if err != nil {
		return nil, fmt.Errorf("find member: %w", err)
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &m, nil
}

// SearchByName returns members whose name contains keyword.
func (s *MemberService) SearchByName(ctx context.Context, keyword string) ([]domain.Member, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: keyword is required", domain.ErrInvalidInput)
	}
	members, err := s.members.SelectByNameKeyword(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}
	return members, nil
}
