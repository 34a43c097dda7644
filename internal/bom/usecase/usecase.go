package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hooknest/craftstock-service/internal/bom"
	bomdto "github.com/hooknest/craftstock-service/internal/bom/dto"
	"github.com/hooknest/craftstock-service/internal/material"
	matdto "github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/product"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type bomUseCase struct {
	links    bom.Repository
	products product.Repository
	yarn     material.YarnRepository
	eyes     material.SafetyEyesRepository
	stuffing material.StuffingRepository
	logger   logger.ZapLogger
}

func NewBomUseCase(
	links bom.Repository,
	products product.Repository,
	yarn material.YarnRepository,
	eyes material.SafetyEyesRepository,
	stuffing material.StuffingRepository,
	log logger.ZapLogger,
) bom.UseCase {
	return &bomUseCase{
		links:    links,
		products: products,
		yarn:     yarn,
		eyes:     eyes,
		stuffing: stuffing,
		logger:   log,
	}
}

func (uc *bomUseCase) resolveProduct(ctx context.Context, productName string) (*model.Product, error) {
	p, err := uc.products.FindByName(ctx, productName)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("product", productName)
	}
	return p, nil
}

// resolveMaterial dispatches on the selector's kind and returns the id of
// the concrete material row, or NotFound naming the key that missed.
func (uc *bomUseCase) resolveMaterial(ctx context.Context, sel matdto.MaterialSelector) (string, error) {
	switch sel.Kind {
	case model.KindYarn:
		if sel.Yarn == nil {
			return "", apperrors.Validation("yarn selector missing key")
		}
		y, err := uc.yarn.FindByKey(ctx, *sel.Yarn)
		if err != nil {
			return "", err
		}
		if y == nil {
			return "", apperrors.NotFound("yarn", sel.Yarn.String())
		}
		return y.ID, nil
	case model.KindSafetyEyes:
		if sel.SafetyEyes == nil {
			return "", apperrors.Validation("safety-eyes selector missing key")
		}
		e, err := uc.eyes.FindByKey(ctx, *sel.SafetyEyes)
		if err != nil {
			return "", err
		}
		if e == nil {
			return "", apperrors.NotFound("safety eyes", sel.SafetyEyes.String())
		}
		return e.ID, nil
	case model.KindStuffing:
		if sel.Stuffing == nil {
			return "", apperrors.Validation("stuffing selector missing key")
		}
		s, err := uc.stuffing.FindByKey(ctx, *sel.Stuffing)
		if err != nil {
			return "", err
		}
		if s == nil {
			return "", apperrors.NotFound("stuffing", sel.Stuffing.String())
		}
		return s.ID, nil
	default:
		return "", apperrors.Validation("unknown material kind %q", string(sel.Kind))
	}
}

func (uc *bomUseCase) AddMaterial(ctx context.Context, productName string, sel matdto.MaterialSelector, quantityUsed float64) (*model.MaterialLink, error) {
	p, err := uc.resolveProduct(ctx, productName)
	if err != nil {
		return nil, err
	}
	materialID, err := uc.resolveMaterial(ctx, sel)
	if err != nil {
		return nil, err
	}

	link := &model.MaterialLink{
		ID:           uuid.New().String(),
		ProductID:    p.ID,
		MaterialKind: sel.Kind,
		MaterialID:   materialID,
		QuantityUsed: quantityUsed,
		CreatedAt:    time.Now(),
	}
	if err := uc.links.Insert(ctx, link); err != nil {
		return nil, err
	}

	uc.logger.Info("linked material to product",
		zap.String("product", productName),
		zap.String("kind", string(sel.Kind)),
		zap.String("material_id", materialID),
	)
	return link, nil
}

func (uc *bomUseCase) RemoveMaterial(ctx context.Context, productName string, sel matdto.MaterialSelector) error {
	p, err := uc.resolveProduct(ctx, productName)
	if err != nil {
		return err
	}
	materialID, err := uc.resolveMaterial(ctx, sel)
	if err != nil {
		return err
	}

	removed, err := uc.links.DeleteOne(ctx, p.ID, sel.Kind, materialID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.NotFound("material link", fmt.Sprintf("%s→%s/%s", productName, sel.Kind, materialID))
	}
	return nil
}

func (uc *bomUseCase) UpdateMaterialQuantity(ctx context.Context, productName string, sel matdto.MaterialSelector, quantityUsed float64) error {
	p, err := uc.resolveProduct(ctx, productName)
	if err != nil {
		return err
	}
	materialID, err := uc.resolveMaterial(ctx, sel)
	if err != nil {
		return err
	}

	matched, err := uc.links.UpdateQuantity(ctx, p.ID, sel.Kind, materialID, quantityUsed)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.NotFound("material link", fmt.Sprintf("%s→%s/%s", productName, sel.Kind, materialID))
	}
	return nil
}

func (uc *bomUseCase) LinksForProduct(ctx context.Context, productID string) ([]model.MaterialLink, error) {
	return uc.links.FindByProduct(ctx, productID)
}

func (uc *bomUseCase) ProductsUsingMaterial(ctx context.Context, kind model.MaterialKind, materialID string) ([]model.Product, error) {
	if !kind.Valid() {
		return nil, apperrors.Validation("unknown material kind %q", string(kind))
	}
	return uc.links.FindProductsUsing(ctx, kind, materialID)
}

func (uc *bomUseCase) DetailedLinksForProduct(ctx context.Context, productName string) ([]bomdto.MaterialUsage, error) {
	p, err := uc.resolveProduct(ctx, productName)
	if err != nil {
		return nil, err
	}
	links, err := uc.links.FindByProduct(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	usages := make([]bomdto.MaterialUsage, 0, len(links))
	for _, link := range links {
		usage := bomdto.MaterialUsage{Link: link}
		switch link.MaterialKind {
		case model.KindYarn:
			usage.Yarn, err = uc.yarn.FindByID(ctx, link.MaterialID)
		case model.KindSafetyEyes:
			usage.SafetyEyes, err = uc.eyes.FindByID(ctx, link.MaterialID)
		case model.KindStuffing:
			usage.Stuffing, err = uc.stuffing.FindByID(ctx, link.MaterialID)
		}
		if err != nil {
			return nil, err
		}
		if usage.Yarn == nil && usage.SafetyEyes == nil && usage.Stuffing == nil {
			// Dangling link: the material row was deleted after linking.
			uc.logger.Warn("material link dangles",
				zap.String("product", productName),
				zap.String("kind", string(link.MaterialKind)),
				zap.String("material_id", link.MaterialID),
			)
		}
		usages = append(usages, usage)
	}
	return usages, nil
}

func (uc *bomUseCase) CanSupply(ctx context.Context, materialID string, requiredQuantity float64) (bool, error) {
	total, err := uc.links.SumQuantityUsed(ctx, materialID)
	if err != nil {
		return false, err
	}
	return total >= requiredQuantity, nil
}
