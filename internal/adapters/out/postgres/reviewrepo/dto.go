// Package reviewrepo provides data transfer objects and mapping functions
// for service order review persistence. Bullet point lists are stored as
// JSON text columns.
package reviewrepo

import (
	"encoding/json"

	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/kernel"
	"github.com/lcnogueira/plataforma-sabia/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
type ReviewDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ServiceOrderID uuid.UUID `gorm:"type:uuid;index"`
	UserID         uuid.UUID `gorm:"type:uuid;index"`
	Content        string
	Rating         int
	Positive       string `gorm:"type:text"`
	Negative       string `gorm:"type:text"`
}

// TableName specifies the database table name for reviews.
func (ReviewDTO) TableName() string {
	return "service_order_reviews"
}

// fromDomain converts a review entity to its database representation.
func fromDomain(review *serviceorder.Review) (ReviewDTO, error) {
	positive, err := json.Marshal(review.Positive())
	if err != nil {
		return ReviewDTO{}, err
	}

	negative, err := json.Marshal(review.Negative())
	if err != nil {
		return ReviewDTO{}, err
	}

	return ReviewDTO{
		ID:             review.ID().Bytes(),
		ServiceOrderID: review.ServiceOrderID().Bytes(),
		UserID:         review.ReviewerID().Bytes(),
		Content:        review.Content(),
		Rating:         review.Rating(),
		Positive:       string(positive),
		Negative:       string(negative),
	}, nil
}

// toDomain converts a database DTO back to the review entity.
func toDomain(dto ReviewDTO) (*serviceorder.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	serviceOrderID, err := kernel.UUIDFromBytes(dto.ServiceOrderID[:])
	if err != nil {
		return nil, err
	}

	reviewerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var positive, negative []string
	if dto.Positive != "" {
		if err = json.Unmarshal([]byte(dto.Positive), &positive); err != nil {
			return nil, err
		}
	}
	if dto.Negative != "" {
		if err = json.Unmarshal([]byte(dto.Negative), &negative); err != nil {
			return nil, err
		}
	}

	return serviceorder.RestoreReview(
		id,
		serviceOrderID,
		reviewerID,
		dto.Content,
		dto.Rating,
		positive,
		negative,
	)
}
