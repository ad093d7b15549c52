package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Roles carried in the auth token. ADMIN doubles as payroll approver and
// payer; this matches the small-organization setup the app is built for.
const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && (p.act == "*" || r.act == p.act)
`

// policies is the static permission table. Policies live in code rather
// than in the database: the role model is fixed per deployment.
var policies = [][]string{
	{RoleAdmin, "payslip", "*"},
	{RoleAdmin, "leave", "*"},
	{RoleAdmin, "notification", "*"},
	{RoleAdmin, "employee", "*"},

	{RoleManager, "payslip", "read"},
	{RoleManager, "leave", "read"},
	{RoleManager, "leave", "decide"},
	{RoleManager, "notification", "read"},
	{RoleManager, "notification", "update"},
	{RoleManager, "employee", "read"},

	{RoleEmployee, "payslip", "read"},
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "notification", "read"},
	{RoleEmployee, "notification", "update"},
	{RoleEmployee, "employee", "read"},
}

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

//go:generate mockgen -source=rbac.go -destination=mock/rbac_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
