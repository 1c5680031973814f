package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListServiceOrdersQueryHandler retrieves service order listings with
// visibility scoping applied in SQL.
type ListServiceOrdersQueryHandler struct {
	db        *gorm.DB
	evaluator *services.AccessEvaluator
}

// NewListServiceOrdersQueryHandler creates a handler for service order
// listing queries.
func NewListServiceOrdersQueryHandler(
	db *gorm.DB,
	evaluator *services.AccessEvaluator,
) ListServiceOrdersQueryHandler {
	return ListServiceOrdersQueryHandler{db: db, evaluator: evaluator}
}

// Handle executes the listing query.
//
// Scoping:
//   - requester view (FromCurrentUser): only the requester's own orders
//   - capability holders: every order
//   - everyone else: orders placed on services the requester answers for
func (h ListServiceOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListServiceOrdersQuery,
) (ListServiceOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListServiceOrdersResponse{}, err
	}

	filter := query.Filter()
	requesterID := query.Requester().ID().Bytes()

	conditions := make([]string, 0, 4)
	args := make([]any, 0, 6)

	switch {
	case filter.FromCurrentUser:
		conditions = append(conditions, "so.user_id = ?")
		args = append(args, requesterID)
	case h.evaluator.CanAccess(query.Requester(),
		[]access.Capability{access.ListServicesOrders}, services.GlobalScope()):
		// unrestricted
	default:
		conditions = append(conditions, "s.responsible_id = ?")
		args = append(args, requesterID)
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]int, 0, len(filter.Statuses))
		for _, st := range filter.Statuses {
			statuses = append(statuses, int(st))
		}
		conditions = append(conditions, "so.status IN ?")
		args = append(args, statuses)
	}

	from, to := dateRange(filter.DateFrom, filter.DateTo)
	conditions = append(conditions, "so.created_at BETWEEN ? AND ?")
	args = append(args, from, to)

	sql := fmt.Sprintf(`
		SELECT
			so.id,
			so.service_id,
			s.name,
			so.user_id,
			so.quantity,
			so.comment,
			so.status,
			so.created_at,
			COUNT(*) OVER() AS total
		FROM service_orders so
		JOIN services s ON s.id = so.service_id
		WHERE %s
		ORDER BY so.%s %s, so.id
		LIMIT ? OFFSET ?
	`, strings.Join(conditions, " AND "), filter.OrderBy, strings.ToUpper(filter.Order))
	args = append(args, query.Page().Limit(), query.Page().Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ListServiceOrdersResponse{}, err
	}
	defer rows.Close()

	response := ListServiceOrdersResponse{
		Orders: make([]ServiceOrderReadModel, 0),
	}

	for rows.Next() {
		var row ServiceOrderReadModel
		var id, serviceID, userID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&serviceID,
			&row.ServiceName,
			&userID,
			&row.Quantity,
			&row.Comment,
			&status,
			&row.CreatedAt,
			&response.Total,
		)
		if err != nil {
			return ListServiceOrdersResponse{}, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListServiceOrdersResponse{}, err
		}
		if row.ServiceID, err = kernel.UUIDFromBytes(serviceID[:]); err != nil {
			return ListServiceOrdersResponse{}, err
		}
		if row.RequesterID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return ListServiceOrdersResponse{}, err
		}

		row.Status = serviceorder.Status(status).String()

		response.Orders = append(response.Orders, row)
	}

	if err = rows.Err(); err != nil {
		return ListServiceOrdersResponse{}, err
	}

	return response, nil
}
