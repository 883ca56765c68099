package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/estately-inc/estately/internal/shared/authorization"
	"github.com/estately-inc/estately/internal/shared/logger"
)

// rbacModel grants actions to roles directly; there is no role inheritance.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

var _ authorization.Checker = (*Enforcer)(nil)

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds an in-memory enforcer seeded with the built-in role
// matrix.
func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}
	if err := e.seed(); err != nil {
		return nil, err
	}
	return e, nil
}

// NewPersistentEnforcer stores policies in the casbin_rule table. An empty
// table is seeded with the built-in matrix; existing rows are left alone so
// operators can adjust grants in the database.
func NewPersistentEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	e := &Enforcer{enforcer: enforcer, logger: log}

	existing, err := enforcer.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to read policy: %w", err)
	}
	if len(existing) == 0 {
		if err := e.seed(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

func (e *Enforcer) seed() error {
	grants := authorization.DefaultGrants()
	rules := make([][]string, 0, len(grants))
	for _, g := range grants {
		rules = append(rules, []string{g.Role.String(), authorization.ResourceListing, string(g.Action)})
	}

	if _, err := e.enforcer.AddPolicies(rules); err != nil {
		e.logger.Errorw("failed to seed listing permissions", "error", err)
		return fmt.Errorf("failed to seed listing permissions: %w", err)
	}

	e.logger.Infow("listing permissions seeded", "count", len(rules))
	return nil
}

// Can implements authorization.Checker. Enforcement errors deny.
func (e *Enforcer) Can(role authorization.UserRole, action authorization.Action) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role.String(), authorization.ResourceListing, string(action))
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "action", action)
		return false
	}
	return allowed
}

func (e *Enforcer) Grant(role authorization.UserRole, action authorization.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.AddPolicy(role.String(), authorization.ResourceListing, string(action)); err != nil {
		e.logger.Errorw("failed to add policy", "error", err)
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return nil
}

func (e *Enforcer) Revoke(role authorization.UserRole, action authorization.Action) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.enforcer.RemovePolicy(role.String(), authorization.ResourceListing, string(action)); err != nil {
		e.logger.Errorw("failed to remove policy", "error", err)
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return nil
}

// LoadPolicy reloads policies from storage.
func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
