package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/access"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListReviewsQueryHandler retrieves review listings joined with the
// reviewer's name for display. Without the service order listing capability
// the requester only sees reviews on services they are responsible for.
type ListReviewsQueryHandler struct {
	db        *gorm.DB
	evaluator *services.AccessEvaluator
}

// NewListReviewsQueryHandler creates a handler for review listing queries.
func NewListReviewsQueryHandler(db *gorm.DB, evaluator *services.AccessEvaluator) ListReviewsQueryHandler {
	return ListReviewsQueryHandler{db: db, evaluator: evaluator}
}

// Handle executes the listing query. Bullet point lists are stored as JSON
// text columns and decoded here.
func (h ListReviewsQueryHandler) Handle(
	ctx context.Context,
	query ListReviewsQuery,
) (ListReviewsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListReviewsResponse{}, err
	}

	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if !h.evaluator.CanAccess(query.Requester(),
		[]access.Capability{access.ListServicesOrders}, services.GlobalScope()) {
		conditions = append(conditions, "s.responsible_id = ?")
		args = append(args, query.Requester().ID().Bytes())
	}

	if query.Filter().ServiceOrderID != nil {
		conditions = append(conditions, "r.service_order_id = ?")
		args = append(args, query.Filter().ServiceOrderID.Bytes())
	}

	if len(conditions) == 0 {
		conditions = append(conditions, "TRUE")
	}

	sql := fmt.Sprintf(`
		SELECT
			r.id,
			r.service_order_id,
			r.user_id,
			u.full_name,
			r.content,
			r.rating,
			r.positive,
			r.negative,
			COUNT(*) OVER() AS total
		FROM service_order_reviews r
		JOIN service_orders so ON so.id = r.service_order_id
		JOIN services s ON s.id = so.service_id
		JOIN users u ON u.id = r.user_id
		WHERE %s
		ORDER BY r.id
		LIMIT ? OFFSET ?
	`, strings.Join(conditions, " AND "))
	args = append(args, query.Page().Limit(), query.Page().Offset())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ListReviewsResponse{}, err
	}
	defer rows.Close()

	response := ListReviewsResponse{
		Reviews: make([]ReviewReadModel, 0),
	}

	for rows.Next() {
		var row ReviewReadModel
		var id, serviceOrderID, reviewerID uuid.UUID
		var positive, negative string

		err = rows.Scan(
			&id,
			&serviceOrderID,
			&reviewerID,
			&row.ReviewerName,
			&row.Content,
			&row.Rating,
			&positive,
			&negative,
			&response.Total,
		)
		if err != nil {
			return ListReviewsResponse{}, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListReviewsResponse{}, err
		}
		if row.ServiceOrderID, err = kernel.UUIDFromBytes(serviceOrderID[:]); err != nil {
			return ListReviewsResponse{}, err
		}
		if row.ReviewerID, err = kernel.UUIDFromBytes(reviewerID[:]); err != nil {
			return ListReviewsResponse{}, err
		}

		if positive != "" {
			if err = json.Unmarshal([]byte(positive), &row.Positive); err != nil {
				return ListReviewsResponse{}, err
			}
		}
		if negative != "" {
			if err = json.Unmarshal([]byte(negative), &row.Negative); err != nil {
				return ListReviewsResponse{}, err
			}
		}

		response.Reviews = append(response.Reviews, row)
	}

	if err = rows.Err(); err != nil {
		return ListReviewsResponse{}, err
	}

	return response, nil
}
