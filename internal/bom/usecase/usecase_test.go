package usecase

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	matdto "github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/internal/model"
	productdto "github.com/hooknest/craftstock-service/internal/product/dto"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type fakeLinkRepo struct {
	links    []model.MaterialLink
	products []model.Product
}

func (f *fakeLinkRepo) Insert(_ context.Context, link *model.MaterialLink) error {
	f.links = append(f.links, *link)
	return nil
}

func (f *fakeLinkRepo) DeleteOne(_ context.Context, productID string, kind model.MaterialKind, materialID string) (bool, error) {
	for i := range f.links {
		l := f.links[i]
		if l.ProductID == productID && l.MaterialKind == kind && l.MaterialID == materialID {
			f.links = append(f.links[:i], f.links[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLinkRepo) UpdateQuantity(_ context.Context, productID string, kind model.MaterialKind, materialID string, quantity float64) (bool, error) {
	matched := false
	for i := range f.links {
		l := &f.links[i]
		if l.ProductID == productID && l.MaterialKind == kind && l.MaterialID == materialID {
			l.QuantityUsed = quantity
			matched = true
		}
	}
	return matched, nil
}

func (f *fakeLinkRepo) FindByProduct(_ context.Context, productID string) ([]model.MaterialLink, error) {
	var out []model.MaterialLink
	for _, l := range f.links {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) FindProductsUsing(_ context.Context, kind model.MaterialKind, materialID string) ([]model.Product, error) {
	seen := map[string]bool{}
	var out []model.Product
	for _, l := range f.links {
		if l.MaterialKind != kind || l.MaterialID != materialID || seen[l.ProductID] {
			continue
		}
		for _, p := range f.products {
			if p.ID == l.ProductID {
				out = append(out, p)
				seen[p.ID] = true
			}
		}
	}
	return out, nil
}

func (f *fakeLinkRepo) SumQuantityUsed(_ context.Context, materialID string) (float64, error) {
	var total float64
	for _, l := range f.links {
		if l.MaterialID == materialID {
			total += l.QuantityUsed
		}
	}
	return total, nil
}

type fakeProductRepo struct {
	products []model.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, _ *productdto.ProductFilters) ([]model.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].Name == name {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	p, _ := f.FindByName(ctx, name)
	return p != nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, _ *model.Product, _ time.Time) (bool, error) {
	return false, nil
}

func (f *fakeProductRepo) UpdateStockByName(_ context.Context, _ string, _ int) (bool, error) {
	return false, nil
}

func (f *fakeProductRepo) AdjustStock(_ context.Context, _ string, _ int) (bool, error) {
	return false, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, _ string) error { return nil }

type fakeYarnRepo struct {
	yarns []model.Yarn
}

func (f *fakeYarnRepo) Create(_ context.Context, y *model.Yarn) error {
	f.yarns = append(f.yarns, *y)
	return nil
}

func (f *fakeYarnRepo) FindAll(_ context.Context, _ string) ([]model.Yarn, error) {
	return f.yarns, nil
}

func (f *fakeYarnRepo) FindByID(_ context.Context, id string) (*model.Yarn, error) {
	for i := range f.yarns {
		if f.yarns[i].ID == id {
			y := f.yarns[i]
			return &y, nil
		}
	}
	return nil, nil
}

func (f *fakeYarnRepo) FindByKey(_ context.Context, key matdto.YarnKey) (*model.Yarn, error) {
	for i := range f.yarns {
		y := f.yarns[i]
		if y.Brand == key.Brand && y.FiberType == key.FiberType && y.Weight == key.Weight && y.Color == key.Color {
			return &y, nil
		}
	}
	return nil, nil
}

func (f *fakeYarnRepo) Update(_ context.Context, _ *model.Yarn) error { return nil }

func (f *fakeYarnRepo) UpdateQuantity(_ context.Context, _ matdto.YarnKey, _ float64) (bool, error) {
	return false, nil
}

func (f *fakeYarnRepo) DeleteByKey(_ context.Context, _ matdto.YarnKey) (*model.Yarn, error) {
	return nil, nil
}

func (f *fakeYarnRepo) ListBrands(_ context.Context) ([]string, error) { return nil, nil }

type fakeEyesRepo struct {
	eyes []model.SafetyEyes
}

func (f *fakeEyesRepo) Create(_ context.Context, e *model.SafetyEyes) error {
	f.eyes = append(f.eyes, *e)
	return nil
}

func (f *fakeEyesRepo) FindAll(_ context.Context, _ string) ([]model.SafetyEyes, error) {
	return f.eyes, nil
}

func (f *fakeEyesRepo) FindByID(_ context.Context, id string) (*model.SafetyEyes, error) {
	for i := range f.eyes {
		if f.eyes[i].ID == id {
			e := f.eyes[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEyesRepo) FindByKey(_ context.Context, key matdto.SafetyEyesKey) (*model.SafetyEyes, error) {
	for i := range f.eyes {
		e := f.eyes[i]
		if math.Abs(e.SizeMM-key.SizeMM) < matdto.SizeEpsilon && e.Color == key.Color && e.Shape == key.Shape {
			return &e, nil
		}
	}
	return nil, nil
}

func (f *fakeEyesRepo) Update(_ context.Context, _ *model.SafetyEyes) error { return nil }

func (f *fakeEyesRepo) UpdateQuantity(_ context.Context, _ matdto.SafetyEyesKey, _ float64) (bool, error) {
	return false, nil
}

func (f *fakeEyesRepo) DeleteByKey(_ context.Context, _ matdto.SafetyEyesKey) (*model.SafetyEyes, error) {
	return nil, nil
}

type fakeStuffingRepo struct {
	stuffing []model.Stuffing
}

func (f *fakeStuffingRepo) Create(_ context.Context, s *model.Stuffing) error {
	f.stuffing = append(f.stuffing, *s)
	return nil
}

func (f *fakeStuffingRepo) FindAll(_ context.Context, _ string) ([]model.Stuffing, error) {
	return f.stuffing, nil
}

func (f *fakeStuffingRepo) FindByID(_ context.Context, id string) (*model.Stuffing, error) {
	for i := range f.stuffing {
		if f.stuffing[i].ID == id {
			s := f.stuffing[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStuffingRepo) FindByKey(_ context.Context, key matdto.StuffingKey) (*model.Stuffing, error) {
	for i := range f.stuffing {
		s := f.stuffing[i]
		if s.Brand == key.Brand && s.FillType == key.FillType {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStuffingRepo) Update(_ context.Context, _ *model.Stuffing) error { return nil }

func (f *fakeStuffingRepo) UpdateQuantity(_ context.Context, _ matdto.StuffingKey, _ float64) (bool, error) {
	return false, nil
}

func (f *fakeStuffingRepo) DeleteByKey(_ context.Context, _ matdto.StuffingKey) (*model.Stuffing, error) {
	return nil, nil
}

type bomFixture struct {
	links    *fakeLinkRepo
	products *fakeProductRepo
	yarn     *fakeYarnRepo
	eyes     *fakeEyesRepo
	stuffing *fakeStuffingRepo

	bear     model.Product
	wool     model.Yarn
	blackEye model.SafetyEyes
}

func newBomFixture() *bomFixture {
	f := &bomFixture{
		links:    &fakeLinkRepo{},
		products: &fakeProductRepo{},
		yarn:     &fakeYarnRepo{},
		eyes:     &fakeEyesRepo{},
		stuffing: &fakeStuffingRepo{},
	}
	f.bear = model.Product{BaseModel: model.BaseModel{ID: uuid.New().String()}, Name: "Bear", SalePrice: 45}
	f.products.products = append(f.products.products, f.bear)
	f.links.products = f.products.products

	f.wool = model.Yarn{
		BaseModel: model.BaseModel{ID: uuid.New().String()},
		Brand:     "Brava", FiberType: "acrylic", Weight: "worsted", Color: "brown",
	}
	f.yarn.yarns = append(f.yarn.yarns, f.wool)

	f.blackEye = model.SafetyEyes{
		BaseModel: model.BaseModel{ID: uuid.New().String()},
		SizeMM:    10.5, Color: "black", Shape: "round",
	}
	f.eyes.eyes = append(f.eyes.eyes, f.blackEye)
	return f
}

func (f *bomFixture) useCase() *bomUseCase {
	return NewBomUseCase(f.links, f.products, f.yarn, f.eyes, f.stuffing, logger.NewNop()).(*bomUseCase)
}

func woolSelector(f *bomFixture) matdto.MaterialSelector {
	return matdto.MaterialSelector{
		Kind: model.KindYarn,
		Yarn: &matdto.YarnKey{Brand: f.wool.Brand, FiberType: f.wool.FiberType, Weight: f.wool.Weight, Color: f.wool.Color},
	}
}

func TestAddMaterial_LinksProductToMaterial(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	link, err := uc.AddMaterial(context.Background(), "Bear", woolSelector(f), 2.5)
	require.NoError(t, err)
	require.Equal(t, f.bear.ID, link.ProductID)
	require.Equal(t, f.wool.ID, link.MaterialID)
	require.Equal(t, model.KindYarn, link.MaterialKind)
	require.InDelta(t, 2.5, link.QuantityUsed, 1e-9)
	require.Len(t, f.links.links, 1)
}

func TestAddMaterial_UnknownProductLeavesNoLink(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	_, err := uc.AddMaterial(context.Background(), "Dragon", woolSelector(f), 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Empty(t, f.links.links)
}

func TestAddMaterial_UnknownMaterialLeavesNoLink(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	sel := matdto.MaterialSelector{
		Kind: model.KindYarn,
		Yarn: &matdto.YarnKey{Brand: "Nonexistent", FiberType: "wool", Weight: "dk", Color: "red"},
	}
	_, err := uc.AddMaterial(context.Background(), "Bear", sel, 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.Empty(t, f.links.links)
}

func TestAddMaterial_SelectorMissingKey(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	_, err := uc.AddMaterial(context.Background(), "Bear", matdto.MaterialSelector{Kind: model.KindYarn}, 1)
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAddMaterial_SafetyEyeSizeMatchesWithinTolerance(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	sel := matdto.MaterialSelector{
		Kind:       model.KindSafetyEyes,
		SafetyEyes: &matdto.SafetyEyesKey{SizeMM: 10.50000001, Color: "black", Shape: "round"},
	}
	link, err := uc.AddMaterial(context.Background(), "Bear", sel, 1)
	require.NoError(t, err)
	require.Equal(t, f.blackEye.ID, link.MaterialID)
}

func TestDuplicateLinksStackAndRemoveTakesOne(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	_, err := uc.AddMaterial(context.Background(), "Bear", woolSelector(f), 1)
	require.NoError(t, err)
	_, err = uc.AddMaterial(context.Background(), "Bear", woolSelector(f), 1)
	require.NoError(t, err)
	require.Len(t, f.links.links, 2)

	require.NoError(t, uc.RemoveMaterial(context.Background(), "Bear", woolSelector(f)))
	require.Len(t, f.links.links, 1)

	require.NoError(t, uc.RemoveMaterial(context.Background(), "Bear", woolSelector(f)))
	err = uc.RemoveMaterial(context.Background(), "Bear", woolSelector(f))
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateMaterialQuantity(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	_, err := uc.AddMaterial(context.Background(), "Bear", woolSelector(f), 1)
	require.NoError(t, err)

	require.NoError(t, uc.UpdateMaterialQuantity(context.Background(), "Bear", woolSelector(f), 3.75))
	require.InDelta(t, 3.75, f.links.links[0].QuantityUsed, 1e-9)

	sel := matdto.MaterialSelector{
		Kind:     model.KindStuffing,
		Stuffing: &matdto.StuffingKey{Brand: "Poly-Fil", FillType: "fiber"},
	}
	err = uc.UpdateMaterialQuantity(context.Background(), "Bear", sel, 2)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDetailedLinksForProduct(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	_, err := uc.AddMaterial(context.Background(), "Bear", woolSelector(f), 2)
	require.NoError(t, err)

	// A link whose material row was deleted after linking.
	f.links.links = append(f.links.links, model.MaterialLink{
		ID:           uuid.New().String(),
		ProductID:    f.bear.ID,
		MaterialKind: model.KindStuffing,
		MaterialID:   uuid.New().String(),
		QuantityUsed: 4,
	})

	usages, err := uc.DetailedLinksForProduct(context.Background(), "Bear")
	require.NoError(t, err)
	require.Len(t, usages, 2)

	require.NotNil(t, usages[0].Yarn)
	require.Equal(t, f.wool.ID, usages[0].Yarn.ID)
	require.Nil(t, usages[0].SafetyEyes)
	require.Nil(t, usages[0].Stuffing)

	require.Nil(t, usages[1].Yarn)
	require.Nil(t, usages[1].SafetyEyes)
	require.Nil(t, usages[1].Stuffing)
}

func TestProductsUsingMaterial(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	_, err := uc.AddMaterial(context.Background(), "Bear", woolSelector(f), 1)
	require.NoError(t, err)

	products, err := uc.ProductsUsingMaterial(context.Background(), model.KindYarn, f.wool.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Bear", products[0].Name)

	_, err = uc.ProductsUsingMaterial(context.Background(), model.MaterialKind("beads"), f.wool.ID)
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCanSupply_SumsAllocationAcrossLinks(t *testing.T) {
	f := newBomFixture()
	uc := f.useCase()

	_, err := uc.AddMaterial(context.Background(), "Bear", woolSelector(f), 1.5)
	require.NoError(t, err)
	_, err = uc.AddMaterial(context.Background(), "Bear", woolSelector(f), 2.0)
	require.NoError(t, err)

	ok, err := uc.CanSupply(context.Background(), f.wool.ID, 3.5)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = uc.CanSupply(context.Background(), f.wool.ID, 3.6)
	require.NoError(t, err)
	require.False(t, ok)
}
