// Package access defines the capability vocabulary and the role policy used
// for permission checks. Capabilities are a closed, typed set resolved at
// startup; unknown values fail closed.
package access

import (
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/user"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"
)

// Capability names an operation class a role may be granted.
type Capability int

const (
	// Unknown represents an invalid capability. Nobody holds it.
	Unknown Capability = iota

	// ListTechnologiesOrders grants visibility over every technology order,
	// not just those of owned technologies.
	ListTechnologiesOrders

	// ListServicesOrders grants visibility over every service order.
	ListServicesOrders

	// CloseTechnologyOrders grants closing any technology order.
	CloseTechnologyOrders

	// CancelTechnologyOrders grants canceling any technology order.
	CancelTechnologyOrders

	// PerformServiceOrders grants performing any service order.
	PerformServiceOrders
)

func getCapabilityStrings() map[Capability]string {
	return map[Capability]string{
		ListTechnologiesOrders: "LIST_TECHNOLOGIES_ORDERS",
		ListServicesOrders:     "LIST_SERVICES_ORDERS",
		CloseTechnologyOrders:  "CLOSE_TECHNOLOGY_ORDERS",
		CancelTechnologyOrders: "CANCEL_TECHNOLOGY_ORDERS",
		PerformServiceOrders:   "PERFORM_SERVICE_ORDERS",
	}
}

// Validate checks that the capability is one of the declared operation classes.
func (c Capability) Validate() error {
	if _, ok := getCapabilityStrings()[c]; !ok {
		return errs.NewValueIsInvalidError("capability")
	}
	return nil
}

// String returns the stable permission string for the capability.
func (c Capability) String() string {
	if str, ok := getCapabilityStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// Policy maps role names to the capabilities they grant.
type Policy map[string][]Capability

// DefaultPolicy returns the platform's seeded role policy. Regular users rely
// on the ownership override for resources they own; admins hold every
// capability.
func DefaultPolicy() Policy {
	return Policy{
		user.RoleDefaultUser: {},
		user.RoleResearcher:  {},
		user.RoleAdmin: {
			ListTechnologiesOrders,
			ListServicesOrders,
			CloseTechnologyOrders,
			CancelTechnologyOrders,
			PerformServiceOrders,
		},
	}
}
