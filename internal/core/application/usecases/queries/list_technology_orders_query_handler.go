package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/technology"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTechnologyOrdersQueryHandler retrieves technology order listings.
// Uses direct SQL for optimal read performance; the visibility rules live in
// the WHERE clause so a row the requester may not see is never fetched.
type ListTechnologyOrdersQueryHandler struct {
	db        *gorm.DB
	evaluator *services.AccessEvaluator
}

// NewListTechnologyOrdersQueryHandler creates a handler for technology order
// listing queries.
func NewListTechnologyOrdersQueryHandler(
	db *gorm.DB,
	evaluator *services.AccessEvaluator,
) ListTechnologyOrdersQueryHandler {
	return ListTechnologyOrdersQueryHandler{db: db, evaluator: evaluator}
}

// Handle executes the listing query.
//
// Scoping:
//   - buyer view (FromCurrentUser): only the requester's own orders
//   - capability holders: every order
//   - everyone else: orders placed on technologies the requester owns
func (h ListTechnologyOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListTechnologyOrdersQuery,
) (ListTechnologyOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListTechnologyOrdersResponse{}, err
	}

	filter := query.Filter()
	requesterID := query.Requester().ID().Bytes()

	conditions := make([]string, 0, 5)
	args := make([]any, 0, 8)

	switch {
	case filter.FromCurrentUser:
		conditions = append(conditions, "o.user_id = ?")
		args = append(args, requesterID)
	case h.evaluator.CanAccess(query.Requester(),
		[]access.Capability{access.ListTechnologiesOrders}, services.GlobalScope()):
		// unrestricted
	default:
		conditions = append(conditions, `EXISTS (
			SELECT 1 FROM technology_users tu
			WHERE tu.technology_id = o.technology_id
			  AND tu.user_id = ?
			  AND tu.role = ?
		)`)
		args = append(args, requesterID, string(technology.RoleOwner))
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]int, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			statuses = append(statuses, int(st))
		}
		conditions = append(conditions, "o.status IN ?")
		args = append(args, statuses)
	}

	if filter.TechnologyID != nil {
		conditions = append(conditions, "o.technology_id = ?")
		args = append(args, filter.TechnologyID.Bytes())
	}

	if filter.BuyerID != nil {
		conditions = append(conditions, "o.user_id = ?")
		args = append(args, filter.BuyerID.Bytes())
	}

	if filter.UnitValue != nil {
		conditions = append(conditions, "o.unit_value = ?")
		args = append(args, *filter.UnitValue)
	}

	from, to := dateRange(filter.DateFrom, filter.DateTo)
	conditions = append(conditions, "o.created_at BETWEEN ? AND ?")
	args = append(args, from, to)

	// orderBy and order are validated against whitelists at construction, so
	// interpolating them here cannot inject SQL.
	sql := fmt.Sprintf(`
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
			o.created_at,
			COUNT(*) OVER() AS total
		FROM technology_orders o
		JOIN technologies t ON t.id = o.technology_id
		WHERE %s
		ORDER BY o.%s %s, o.id
		LIMIT ? OFFSET ?
	`, strings.Join(conditions, " AND "), filter.OrderBy, strings.ToUpper(filter.Order))
	args = append(args, query.Page().Limit(), query.Page().Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ListTechnologyOrdersResponse{}, err
	}
	defer rows.Close()

	response := ListTechnologyOrdersResponse{
		Orders: make([]TechnologyOrderReadModel, 0),
	}

	for rows.Next() {
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
			&response.Total,
		)
		if err != nil {
			return ListTechnologyOrdersResponse{}, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListTechnologyOrdersResponse{}, err
		}
		if row.TechnologyID, err = kernel.UUIDFromBytes(technologyID[:]); err != nil {
			return ListTechnologyOrdersResponse{}, err
		}
		if row.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return ListTechnologyOrdersResponse{}, err
		}

		row.Use = techorder.Use(use).String()
		row.Funding = techorder.Funding(funding).String()
		row.Status = techorder.Status(status).String()

		response.Orders = append(response.Orders, row)
	}

	if err = rows.Err(); err != nil {
		return ListTechnologyOrdersResponse{}, err
	}

	return response, nil
}
