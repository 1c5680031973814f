package queries

import (
	"context"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/technology"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"
	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTechnologyOrderQueryHandler retrieves a single technology order with the
// visibility check folded into the WHERE clause. A row the requester may not
// see is indistinguishable from a missing one.
type GetTechnologyOrderQueryHandler struct {
	db        *gorm.DB
	evaluator *services.AccessEvaluator
}

// NewGetTechnologyOrderQueryHandler creates a handler for single order
// lookups.
func NewGetTechnologyOrderQueryHandler(
	db *gorm.DB,
	evaluator *services.AccessEvaluator,
) GetTechnologyOrderQueryHandler {
	return GetTechnologyOrderQueryHandler{db: db, evaluator: evaluator}
}

// Handle executes the lookup. Returns an ObjectNotFoundError both when the
// order does not exist and when it is outside the requester's scope.
func (h GetTechnologyOrderQueryHandler) Handle(
	ctx context.Context,
	query GetTechnologyOrderQuery,
) (TechnologyOrderReadModel, error) {
	if err := query.Validate(); err != nil {
		return TechnologyOrderReadModel{}, err
	}

	requesterID := query.Requester().ID().Bytes()

	scope := `(o.user_id = ? OR EXISTS (
		SELECT 1 FROM technology_users tu
		WHERE tu.technology_id = o.technology_id
		  AND tu.user_id = ?
		  AND tu.role = ?
	))`
	args := []any{query.OrderID().Bytes(), requesterID, requesterID, string(technology.RoleOwner)}
	if h.evaluator.CanAccess(query.Requester(),
		[]access.Capability{access.ListTechnologiesOrders}, services.GlobalScope()) {
		scope = "TRUE"
		args = args[:1]
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.technology_id,
			t.title,
			o.user_id,
			o.quantity,
			o.use,
			o.funding,
			o.comment,
			o.status,
			o.unit_value,
			o.cancellation_reason,
			o.created_at
		FROM technology_orders o
		JOIN technologies t ON t.id = o.technology_id
		WHERE o.id = ? AND `+scope, args...).Rows()
	if err != nil {
		return TechnologyOrderReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return TechnologyOrderReadModel{}, err
		}
		return TechnologyOrderReadModel{},
			errs.NewObjectNotFoundError("technology order", query.OrderID().String())
	}

	var row TechnologyOrderReadModel
	var id, technologyID, buyerID uuid.UUID
	var use, funding, status int

	err = rows.Scan(
		&id,
		&technologyID,
		&row.TechnologyTitle,
		&buyerID,
		&row.Quantity,
		&use,
		&funding,
		&row.Comment,
		&status,
		&row.UnitValue,
		&row.CancellationReason,
		&row.CreatedAt,
	)
	if err != nil {
		return TechnologyOrderReadModel{}, err
	}

	if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return TechnologyOrderReadModel{}, err
	}
	if row.TechnologyID, err = kernel.UUIDFromBytes(technologyID[:]); err != nil {
		return TechnologyOrderReadModel{}, err
	}
	if row.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return TechnologyOrderReadModel{}, err
	}

	row.Use = techorder.Use(use).String()
	row.Funding = techorder.Funding(funding).String()
	row.Status = techorder.Status(status).String()

	return row, nil
}
