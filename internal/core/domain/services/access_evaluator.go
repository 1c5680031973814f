package services

import (
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
)

// Scope narrows a capability check to a specific resource. OwnerID, when set,
// must be the identifier of the user holding the OWNER pivot role on the
// resource. Callers resolve it from the aggregate (e.g. Technology.Owner())
// before evaluating.
type Scope struct {
	OwnerID *kernel.UUID
}

// ResourceScope builds a Scope for a resource owned by the given user.
func ResourceScope(ownerID kernel.UUID) Scope {
	return Scope{OwnerID: &ownerID}
}

// GlobalScope builds a Scope with no resource context. Only role capabilities
// apply.
func GlobalScope() Scope {
	return Scope{}
}

// AccessEvaluator decides allow/deny for a required capability set.
//
// Rules, in order:
//  1. An absent user is always denied (callers must have authenticated first).
//  2. A user who owns the scoped resource is allowed regardless of role
//     capabilities (ownership override).
//  3. Otherwise the user's role must grant at least one required capability.
//     Unknown roles and unknown capabilities grant nothing (fail closed).
//
// Evaluation has no side effects and is deterministic for a given policy.
type AccessEvaluator struct {
	policy access.Policy
}

// NewAccessEvaluator creates an evaluator over the given role policy.
// The policy is resolved once at startup; there is no runtime lookup table.
func NewAccessEvaluator(policy access.Policy) *AccessEvaluator {
	return &AccessEvaluator{policy: policy}
}

// CanAccess reports whether the user may perform an operation guarded by any
// of the required capabilities, within the given scope.
func (e *AccessEvaluator) CanAccess(u *user.User, required []access.Capability, scope Scope) bool {
	if u == nil || u.Validate() != nil {
		return false
	}

	if scope.OwnerID != nil && scope.OwnerID.IsEqual(u.ID()) {
		return true
	}

	granted, ok := e.policy[u.Role()]
	if !ok {
		return false
	}

	for _, req := range required {
		if req.Validate() != nil {
			continue
		}
		for _, cap := range granted {
			if cap == req {
				return true
			}
		}
	}

	return false
}
