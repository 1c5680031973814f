package http

import (
	"time"

	"github.com/lcnogueira/plataforma-sabia/internal/core/application/usecases/queries"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/techorder"
)

type technologyOrderResponse struct {
	ID                 string    `json:"id"`
	TechnologyID       string    `json:"technology_id"`
	UserID             string    `json:"user_id"`
	Quantity           int       `json:"quantity"`
	Use                string    `json:"use"`
	Funding            string    `json:"funding"`
	Comment            string    `json:"comment,omitempty"`
	Status             string    `json:"status"`
	UnitValue          float64   `json:"unit_value,omitempty"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toTechnologyOrderResponse(order *techorder.Order) technologyOrderResponse {
	return technologyOrderResponse{
		ID:                 order.ID().String(),
		TechnologyID:       order.TechnologyID().String(),
		UserID:             order.BuyerID().String(),
		Quantity:           order.Quantity(),
		Use:                order.Use().String(),
		Funding:            order.Funding().String(),
		Comment:            order.Comment(),
		Status:             order.Status().String(),
		UnitValue:          order.UnitValue(),
		CancellationReason: order.CancellationReason(),
		CreatedAt:          order.CreatedAt(),
	}
}

type technologyOrderItem struct {
	ID                 string    `json:"id"`
	TechnologyID       string    `json:"technology_id"`
	TechnologyTitle    string    `json:"technology_title"`
	UserID             string    `json:"user_id"`
	Quantity           int       `json:"quantity"`
	Use                string    `json:"use"`
	Funding            string    `json:"funding"`
	Comment            string    `json:"comment,omitempty"`
	Status             string    `json:"status"`
	UnitValue          float64   `json:"unit_value,omitempty"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func toTechnologyOrderItem(row queries.TechnologyOrderReadModel) technologyOrderItem {
	return technologyOrderItem{
		ID:                 row.ID.String(),
		TechnologyID:       row.TechnologyID.String(),
		TechnologyTitle:    row.TechnologyTitle,
		UserID:             row.BuyerID.String(),
		Quantity:           row.Quantity,
		Use:                row.Use,
		Funding:            row.Funding,
		Comment:            row.Comment,
		Status:             row.Status,
		UnitValue:          row.UnitValue,
		CancellationReason: row.CancellationReason,
		CreatedAt:          row.CreatedAt,
	}
}

type technologyOrderListResponse struct {
	Orders []technologyOrderItem `json:"orders"`
	Total  int64                 `json:"total"`
}

func toTechnologyOrderListResponse(response queries.ListTechnologyOrdersResponse) technologyOrderListResponse {
	items := make([]technologyOrderItem, len(response.Orders))
	for i, row := range response.Orders {
		items[i] = toTechnologyOrderItem(row)
	}
	return technologyOrderListResponse{Orders: items, Total: response.Total}
}

type serviceOrderResponse struct {
	ID        string    `json:"id"`
	ServiceID string    `json:"service_id"`
	UserID    string    `json:"user_id"`
	Quantity  int       `json:"quantity"`
	Comment   string    `json:"comment,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toServiceOrderResponse(order *serviceorder.ServiceOrder) serviceOrderResponse {
	return serviceOrderResponse{
		ID:        order.ID().String(),
		ServiceID: order.ServiceID().String(),
		UserID:    order.UserID().String(),
		Quantity:  order.Quantity(),
		Comment:   order.Comment(),
		Status:    order.Status().String(),
		CreatedAt: order.CreatedAt(),
	}
}

type serviceOrderItem struct {
	ID          string    `json:"id"`
	ServiceID   string    `json:"service_id"`
	ServiceName string    `json:"service_name"`
	UserID      string    `json:"user_id"`
	Quantity    int       `json:"quantity"`
	Comment     string    `json:"comment,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type serviceOrderListResponse struct {
	Orders []serviceOrderItem `json:"orders"`
	Total  int64              `json:"total"`
}

func toServiceOrderListResponse(response queries.ListServiceOrdersResponse) serviceOrderListResponse {
	items := make([]serviceOrderItem, len(response.Orders))
	for i, row := range response.Orders {
		items[i] = serviceOrderItem{
			ID:          row.ID.String(),
			ServiceID:   row.ServiceID.String(),
			ServiceName: row.ServiceName,
			UserID:      row.RequesterID.String(),
			Quantity:    row.Quantity,
			Comment:     row.Comment,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
		}
	}
	return serviceOrderListResponse{Orders: items, Total: response.Total}
}

type reviewResponse struct {
	ID             string   `json:"id"`
	ServiceOrderID string   `json:"service_order_id"`
	UserID         string   `json:"user_id"`
	Content        string   `json:"content"`
	Rating         int      `json:"rating"`
	Positive       []string `json:"positive"`
	Negative       []string `json:"negative"`
}

func toReviewResponse(review *serviceorder.Review) reviewResponse {
	return reviewResponse{
		ID:             review.ID().String(),
		ServiceOrderID: review.ServiceOrderID().String(),
		UserID:         review.ReviewerID().String(),
		Content:        review.Content(),
		Rating:         review.Rating(),
		Positive:       review.Positive(),
		Negative:       review.Negative(),
	}
}

type reviewItem struct {
	ID             string   `json:"id"`
	ServiceOrderID string   `json:"service_order_id"`
	UserID         string   `json:"user_id"`
	UserName       string   `json:"user_name"`
	Content        string   `json:"content"`
	Rating         int      `json:"rating"`
	Positive       []string `json:"positive"`
	Negative       []string `json:"negative"`
}

type reviewListResponse struct {
	Reviews []reviewItem `json:"reviews"`
	Total   int64        `json:"total"`
}

func toReviewListResponse(response queries.ListReviewsResponse) reviewListResponse {
	items := make([]reviewItem, len(response.Reviews))
	for i, row := range response.Reviews {
		items[i] = reviewItem{
			ID:             row.ID.String(),
			ServiceOrderID: row.ServiceOrderID.String(),
			UserID:         row.ReviewerID.String(),
			UserName:       row.ReviewerName,
			Content:        row.Content,
			Rating:         row.Rating,
			Positive:       row.Positive,
			Negative:       row.Negative,
		}
	}
	return reviewListResponse{Reviews: items, Total: response.Total}
}
