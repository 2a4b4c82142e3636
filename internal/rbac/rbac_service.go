package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"

	"github.com/ninoyerbas/JHRIS/internal/domain"
)

// Roles form a closed set; anything else is denied outright.
const (
	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// rolePolicies is the static permission table. Roles inherit downward
// through the grouping chain admin -> hr -> manager -> employee.
var rolePolicies = [][3]string{
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "leave_type", "read"},
	{RoleEmployee, "leave_balance", "read"},
	{RoleEmployee, "attendance", "create"},
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "employee", "read"},

	{RoleManager, "leave", "decide"},
	{RoleManager, "attendance", "read_all"},
	{RoleManager, "attendance", "mark"},

	{RoleHR, "attendance", "update"},
	{RoleHR, "employee", "create"},
	{RoleHR, "employee", "update"},
	{RoleHR, "employee", "delete"},
	{RoleHR, "leave_balance", "create"},

	{RoleAdmin, "user", "read"},
	{RoleAdmin, "user", "update"},
}

var roleInheritance = [][2]string{
	{RoleAdmin, RoleHR},
	{RoleHR, RoleManager},
	{RoleManager, RoleEmployee},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	for _, g := range roleInheritance {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}
	for _, p := range rolePolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if !IsValidRole(req.Role) {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}
