package preference

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/lemraya/lemraya-api/internal/platform/apperr"
	"github.com/lemraya/lemraya-api/internal/platform/dberr"
	"github.com/lemraya/lemraya-api/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetStarred returns the user's starred items. A user with no saved row gets
// the defined empty state; any other read failure is logged and degraded to
// the same empty state so the frontend always renders.
func (service *Service) GetStarred(ctx context.Context, userID string) *Starred {
	empty := &Starred{Success: true, Items: []json.RawMessage{}}

	payload, err := service.repo.GetStarred(ctx, userID)
	if err != nil {
		if !errors.Is(err, dberr.ErrNoRows) {
			service.logger.WarnContext(ctx, "starred items read failed, serving empty state",
				slog.String("user_id", userID), slog.Any("error", err))
		}
		return empty
	}
	if payload == "" {
		return empty
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		service.logger.WarnContext(ctx, "starred items column is not a JSON array, serving empty state",
			slog.String("user_id", userID), slog.Any("error", err))
		return empty
	}

	return &Starred{Success: true, Items: items}
}

// ReplaceStarred overwrites the user's starred items whole. The body must
// carry a JSON array (empty is fine); anything else is rejected before any
// write happens.
func (service *Service) ReplaceStarred(ctx context.Context, userID string, req ReplaceStarredRequest) (*Saved, error) {
	v := &validate.Validator{}
	v.Custom("items", req.Items == nil, "Items must be an array")
	if err := v.Err(); err != nil {
		return nil, err
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.repo.ReplaceStarred(ctx, userID, string(itemsJSON)); err != nil {
		return nil, err
	}

	return &Saved{Success: true}, nil
}

// GetVideoOrder returns the user's saved playback order, or a null order for
// users who never saved one. Read failures degrade the same way starred
// items do.
func (service *Service) GetVideoOrder(ctx context.Context, userID string) *VideoOrder {
	empty := &VideoOrder{Success: true, Order: nil}

	payload, err := service.repo.GetVideoOrder(ctx, userID)
	if err != nil {
		if !errors.Is(err, dberr.ErrNoRows) {
			service.logger.WarnContext(ctx, "video order read failed, serving empty state",
				slog.String("user_id", userID), slog.Any("error", err))
		}
		return empty
	}
	if payload == "" {
		return empty
	}

	var order []int64
	if err := json.Unmarshal([]byte(payload), &order); err != nil {
		service.logger.WarnContext(ctx, "video order column is not a JSON array, serving empty state",
			slog.String("user_id", userID), slog.Any("error", err))
		return empty
	}

	return &VideoOrder{Success: true, Order: order}
}

// ReplaceVideoOrder overwrites the user's playback order whole.
func (service *Service) ReplaceVideoOrder(ctx context.Context, userID string, req ReplaceVideoOrderRequest) (*Saved, error) {
	v := &validate.Validator{}
	v.Custom("order", req.Order == nil, "Order must be an array")
	if err := v.Err(); err != nil {
		return nil, err
	}

	orderJSON, err := json.Marshal(req.Order)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	if err := service.repo.ReplaceVideoOrder(ctx, userID, string(orderJSON)); err != nil {
		return nil, err
	}

	return &Saved{Success: true}, nil
}
