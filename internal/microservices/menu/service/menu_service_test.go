package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patio-system/internal/common/logger"
	"patio-system/internal/domain"
)

type fakeMenuRepo struct {
	items  map[string]domain.MenuItem
	seq    []string
	addons map[string]domain.GlobalAddon
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		items:  map[string]domain.MenuItem{},
		addons: map[string]domain.GlobalAddon{},
	}
}

func (f *fakeMenuRepo) ListMenuItems(_ context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, id := range f.seq {
		out = append(out, f.items[id])
	}
	return out, nil
}

func (f *fakeMenuRepo) GetMenuItem(_ context.Context, id string) (domain.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return domain.MenuItem{}, domain.ErrNotFound
	}
	return item, nil
}

func (f *fakeMenuRepo) SaveMenuItem(_ context.Context, item domain.MenuItem) error {
	if _, ok := f.items[item.ID]; !ok {
		f.seq = append(f.seq, item.ID)
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepo) DeleteMenuItem(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.items, id)
	for i, s := range f.seq {
		if s == id {
			f.seq = append(f.seq[:i], f.seq[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeMenuRepo) SetSoldOut(_ context.Context, id string, soldOut bool) error {
	item, ok := f.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	item.SoldOut = soldOut
	f.items[id] = item
	return nil
}

func (f *fakeMenuRepo) CountMenuItems(_ context.Context) (int, error) {
	return len(f.items), nil
}

func (f *fakeMenuRepo) ListAddons(_ context.Context) ([]domain.GlobalAddon, error) {
	var out []domain.GlobalAddon
	for _, a := range f.addons {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeMenuRepo) SaveAddon(_ context.Context, a domain.GlobalAddon) error {
	f.addons[a.ID] = a
	return nil
}

func (f *fakeMenuRepo) DeleteAddon(_ context.Context, id string) error {
	if _, ok := f.addons[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.addons, id)
	return nil
}

func (f *fakeMenuRepo) ReplaceCatalog(_ context.Context, items []domain.MenuItem, addons []domain.GlobalAddon) error {
	f.items = map[string]domain.MenuItem{}
	f.seq = nil
	f.addons = map[string]domain.GlobalAddon{}
	for _, it := range items {
		f.seq = append(f.seq, it.ID)
		f.items[it.ID] = it
	}
	for _, a := range addons {
		f.addons[a.ID] = a
	}
	return nil
}

func newTestMenu(repo *fakeMenuRepo) MenuServiceInterface {
	return NewMenuService(repo, logger.New("menu-service-test"))
}

func TestVisibleFiltersSpecialsByDay(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := newTestMenu(repo)
	require.NoError(t, svc.EnsureSeeded(context.Background()))

	tuesday, err := svc.Visible(context.Background(), 2)
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, it := range tuesday {
		ids[it.ID] = true
	}
	assert.True(t, ids["spec_tues"], "Tuesday special shows on Tuesday")
	assert.False(t, ids["spec_wed"], "Wednesday special hidden on Tuesday")
	assert.False(t, ids["spec_thurs"])
	assert.False(t, ids["spec_fri"])
	assert.True(t, ids["reg_burger"], "regular items always show")

	sunday, err := svc.Visible(context.Background(), 0)
	require.NoError(t, err)
	for _, it := range sunday {
		assert.NotEqual(t, domain.CategorySpecial, it.Category, "no specials on Sunday")
	}
}

func TestVisibleKeepsSoldOutItems(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := newTestMenu(repo)
	require.NoError(t, svc.EnsureSeeded(context.Background()))
	require.NoError(t, svc.SetSoldOut(context.Background(), "reg_fries", true))

	items, err := svc.Visible(context.Background(), 1)
	require.NoError(t, err)
	var found bool
	for _, it := range items {
		if it.ID == "reg_fries" {
			found = true
			assert.True(t, it.SoldOut)
		}
	}
	assert.True(t, found, "sold-out items stay listed so the screen can grey them out")
}

func TestSeedPoutineUpgradeModifier(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := newTestMenu(repo)
	require.NoError(t, svc.EnsureSeeded(context.Background()))

	item, err := repo.GetMenuItem(context.Background(), "reg_burger")
	require.NoError(t, err)

	var side *domain.MenuOption
	for i := range item.Options {
		if item.Options[i].ID == "opt_side" {
			side = &item.Options[i]
		}
	}
	require.NotNil(t, side)

	var poutine *domain.Choice
	for i := range side.Choices {
		if side.Choices[i].Label == "Upgrade to Poutine (+$2.00)" {
			poutine = &side.Choices[i]
		}
	}
	require.NotNil(t, poutine, "legacy label kept verbatim")
	assert.True(t, poutine.PriceModifier.Equal(decimal.NewFromInt(2)))
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := newTestMenu(repo)
	require.NoError(t, svc.EnsureSeeded(context.Background()))

	custom := domain.MenuItem{ID: "reg_custom", Name: "Custom", BasePrice: decimal.NewFromInt(5), Category: domain.CategoryRegular}
	require.NoError(t, svc.Save(context.Background(), custom))

	require.NoError(t, svc.EnsureSeeded(context.Background()))
	_, err := repo.GetMenuItem(context.Background(), "reg_custom")
	assert.NoError(t, err, "a touched catalog is left alone")
}

func TestResetToSeedDiscardsEdits(t *testing.T) {
	repo := newFakeMenuRepo()
	svc := newTestMenu(repo)
	require.NoError(t, svc.EnsureSeeded(context.Background()))
	require.NoError(t, svc.Save(context.Background(), domain.MenuItem{
		ID: "reg_custom", Name: "Custom", BasePrice: decimal.NewFromInt(5), Category: domain.CategoryRegular,
	}))

	require.NoError(t, svc.ResetToSeed(context.Background()))
	_, err := repo.GetMenuItem(context.Background(), "reg_custom")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, _ := repo.CountMenuItems(context.Background())
	assert.Equal(t, len(SeedMenuItems()), n)
}

func TestSaveValidation(t *testing.T) {
	svc := newTestMenu(newFakeMenuRepo())
	bad := []domain.MenuItem{
		{Name: "No ID", BasePrice: decimal.NewFromInt(5), Category: domain.CategoryRegular},
		{ID: "x", Name: "Negative", BasePrice: decimal.NewFromInt(-1), Category: domain.CategoryRegular},
		{ID: "x", Name: "Bad Category", BasePrice: decimal.NewFromInt(5), Category: "dessert"},
		{ID: "x", Name: "Bad Day", BasePrice: decimal.NewFromInt(5), Category: domain.CategorySpecial, AvailableDay: day(7)},
		{ID: "x", Name: "Empty Select", BasePrice: decimal.NewFromInt(5), Category: domain.CategoryRegular,
			Options: []domain.MenuOption{{ID: "o", Name: "Pick", Type: domain.OptionSelect}}},
	}
	for _, item := range bad {
		err := svc.Save(context.Background(), item)
		var verr *domain.ValidationError
		assert.ErrorAs(t, err, &verr, "item %q", item.Name)
	}
}

func TestAddonValidation(t *testing.T) {
	svc := newTestMenu(newFakeMenuRepo())

	err := svc.SaveAddon(context.Background(), domain.GlobalAddon{ID: "", Name: "Nameless"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	err = svc.SaveAddon(context.Background(), domain.GlobalAddon{ID: "a", Name: "Bad", Price: decimal.NewFromInt(-2)})
	require.ErrorAs(t, err, &verr)

	require.NoError(t, svc.SaveAddon(context.Background(), domain.GlobalAddon{ID: "a", Name: "Good", Price: decimal.NewFromInt(2)}))
}
