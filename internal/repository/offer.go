package repository

import (
	"context"
	"log/slog"

	"github.com/recluta/recluta-backend/gen/ent"
	"github.com/recluta/recluta-backend/gen/ent/offer"
	"github.com/recluta/recluta-backend/internal/entity"
	"github.com/recluta/recluta-backend/internal/utils"
)

type OfferRepository interface {
	GetByID(ctx context.Context, id int) (*entity.Offer, error)
	ListActive(ctx context.Context, companyID int) ([]*entity.Offer, error)
}

type offerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOfferRepository(client *ent.Client, logger *slog.Logger) OfferRepository {
	return &offerRepository{
		client: client,
		logger: logger,
	}
}

func (r *offerRepository) GetByID(ctx context.Context, id int) (*entity.Offer, error) {
	o, err := r.client.Offer.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get offer", "offer_id", id, "error", err)
		return nil, err
	}
	return utils.ToOffer(o), nil
}

func (r *offerRepository) ListActive(ctx context.Context, companyID int) ([]*entity.Offer, error) {
	offers, err := r.client.Offer.Query().
		Where(offer.CompanyID(companyID), offer.Active(true)).
		Order(offer.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list offers", "company_id", companyID, "error", err)
		return nil, err
	}
	result := make([]*entity.Offer, len(offers))
	for i, o := range offers {
		result[i] = utils.ToOffer(o)
	}
	return result, nil
}
