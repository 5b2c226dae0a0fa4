package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"transferhub/backend/internal/common"
	"transferhub/backend/internal/db/repositories"
	"transferhub/backend/internal/metrics"
	"transferhub/backend/internal/models/dtos"
	"transferhub/backend/internal/models/entities"
	"transferhub/backend/internal/storage"
)

const defaultImageType = "image/jpeg"

// FleetStore is the persistence surface the fleet catalog needs.
type FleetStore interface {
	ListActive(ctx context.Context) ([]entities.FleetItem, error)
	ListAll(ctx context.Context) ([]entities.FleetItem, error)
	Insert(ctx context.Context, item *entities.FleetItem) error
	Update(ctx context.Context, id int64, patch repositories.FleetPatch) error
	SoftDelete(ctx context.Context, id int64) error
}

type FleetService struct {
	fleet   FleetStore
	images  storage.ImageStore
	metrics *metrics.Registry
}

func NewFleetService(fleet FleetStore, images storage.ImageStore, reg *metrics.Registry) *FleetService {
	return &FleetService{
		fleet:   fleet,
		images:  images,
		metrics: reg,
	}
}

func (s *FleetService) List(ctx context.Context, all bool) ([]entities.FleetItem, error) {
	var (
		items []entities.FleetItem
		err   error
	)
	if all {
		items, err = s.fleet.ListAll(ctx)
	} else {
		items, err = s.fleet.ListActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list fleet: %w", err)
	}
	return items, nil
}

// Create inserts a fleet item, uploading its image first when one is
// supplied. An upload failure rejects the whole create.
func (s *FleetService) Create(ctx context.Context, req dtos.CreateFleetRequest) (int64, *string, error) {
	if req.Name == nil {
		return 0, nil, common.ValidationError("Missing required field: name")
	}
	if req.Category == nil {
		return 0, nil, common.ValidationError("Missing required field: category")
	}
	if req.Seats == nil {
		return 0, nil, common.ValidationError("Missing required field: seats")
	}

	var imageURL *string
	if req.ImageBase64 != "" {
		url, err := s.uploadImage(ctx, req.ImageBase64, req.ImageType)
		if err != nil {
			return 0, nil, err
		}
		imageURL = &url
	}

	features := req.Features
	if features == nil {
		features = []string{}
	}
	multiplier := 1.0
	if req.PriceMultiplier != nil {
		multiplier = *req.PriceMultiplier
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	item := &entities.FleetItem{
		Name:            *req.Name,
		Category:        *req.Category,
		Seats:           *req.Seats,
		Features:        features,
		PriceMultiplier: multiplier,
		ImageURL:        imageURL,
		Active:          active,
	}

	if err := s.fleet.Insert(ctx, item); err != nil {
		return 0, nil, fmt.Errorf("failed to insert fleet item: %w", err)
	}
	return item.ID, imageURL, nil
}

// Update patches a fleet item. A supplied image is uploaded before any field
// is touched, so an upload failure leaves the record unchanged.
func (s *FleetService) Update(ctx context.Context, req dtos.UpdateFleetRequest) (*string, error) {
	if req.ID == 0 {
		return nil, common.ValidationError("Missing fleet id")
	}

	var imageURL *string
	if req.ImageBase64 != "" {
		url, err := s.uploadImage(ctx, req.ImageBase64, req.ImageType)
		if err != nil {
			return nil, err
		}
		imageURL = &url
	}

	patch := repositories.FleetPatch{
		Name:            req.Name,
		Category:        req.Category,
		Seats:           req.Seats,
		Features:        req.Features,
		PriceMultiplier: req.PriceMultiplier,
		Active:          req.Active,
		ImageURL:        imageURL,
	}
	if patch.Empty() {
		return nil, common.ValidationError("No fields to update")
	}

	if err := s.fleet.Update(ctx, req.ID, patch); err != nil {
		return nil, fmt.Errorf("failed to update fleet item: %w", err)
	}
	return imageURL, nil
}

func (s *FleetService) Delete(ctx context.Context, id int64) error {
	if id == 0 {
		return common.ValidationError("Missing fleet id")
	}
	if err := s.fleet.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete fleet item: %w", err)
	}
	return nil
}

// uploadImage decodes the payload and hands it to the image store. Failures
// come back as validation-class errors so the caller sees a 400 with the
// upload failure message.
func (s *FleetService) uploadImage(ctx context.Context, imageBase64, imageType string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return "", common.ValidationError("Failed to upload image: %v", err)
	}
	if imageType == "" {
		imageType = defaultImageType
	}

	url, err := s.images.Upload(ctx, data, imageType)
	if err != nil {
		return "", common.ValidationError("Failed to upload image: %v", err)
	}

	if s.metrics != nil {
		s.metrics.ImagesUploadedTotal.Inc()
	}
	return url, nil
}
