package service

import (
	"context"
	"fmt"
	"strings"

	"patio-system/internal/common/logger"
	"patio-system/internal/domain"
	"patio-system/internal/microservices/menu/repository"
)

type MenuServiceInterface interface {
	// Visible returns the catalog as the ordering screen sees it on the
	// given weekday: specials only on their day, everything else always,
	// sold-out flags untouched so the UI can grey items out.
	Visible(ctx context.Context, weekday int) ([]domain.MenuItem, error)
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
	Save(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id string) error
	SetSoldOut(ctx context.Context, id string, soldOut bool) error

	ListAddons(ctx context.Context) ([]domain.GlobalAddon, error)
	SaveAddon(ctx context.Context, addon domain.GlobalAddon) error
	DeleteAddon(ctx context.Context, id string) error

	EnsureSeeded(ctx context.Context) error
	ResetToSeed(ctx context.Context) error
}

type MenuService struct {
	repo repository.MenuRepositoryInterface
	lg   *logger.Logger
}

func NewMenuService(repo repository.MenuRepositoryInterface, lg *logger.Logger) MenuServiceInterface {
	return &MenuService{repo: repo, lg: lg}
}

func (s *MenuService) Visible(ctx context.Context, weekday int) ([]domain.MenuItem, error) {
	all, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MenuItem, 0, len(all))
	for _, item := range all {
		if item.Category == domain.CategorySpecial {
			if item.AvailableDay == nil || *item.AvailableDay != weekday {
				continue
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *MenuService) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.ListMenuItems(ctx)
}

func (s *MenuService) Save(ctx context.Context, item domain.MenuItem) error {
	if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
		return &domain.ValidationError{Reason: "menu item id and name are required"}
	}
	if item.BasePrice.IsNegative() {
		return &domain.ValidationError{Reason: "base price cannot be negative"}
	}
	switch item.Category {
	case domain.CategorySpecial, domain.CategoryRegular, domain.CategorySides:
	default:
		return &domain.ValidationError{Reason: fmt.Sprintf("unknown category %q", item.Category)}
	}
	if item.AvailableDay != nil && (*item.AvailableDay < 0 || *item.AvailableDay > 6) {
		return &domain.ValidationError{Reason: "available_day must be 0..6"}
	}
	for _, opt := range item.Options {
		if opt.Type == domain.OptionSelect && len(opt.Choices) == 0 {
			return &domain.ValidationError{Option: opt.Name, Reason: "select option needs at least one choice"}
		}
		for _, c := range opt.Choices {
			if c.PriceModifier.IsNegative() {
				return &domain.ValidationError{Option: opt.Name, Reason: "choice price modifier cannot be negative"}
			}
		}
	}
	if err := s.repo.SaveMenuItem(ctx, item); err != nil {
		return err
	}
	s.lg.Info("menu_item_saved", map[string]any{"id": item.ID, "name": item.Name})
	return nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	s.lg.Info("menu_item_deleted", map[string]any{"id": id})
	return nil
}

func (s *MenuService) SetSoldOut(ctx context.Context, id string, soldOut bool) error {
	if err := s.repo.SetSoldOut(ctx, id, soldOut); err != nil {
		return err
	}
	s.lg.Info("menu_item_sold_out", map[string]any{"id": id, "sold_out": soldOut})
	return nil
}

func (s *MenuService) ListAddons(ctx context.Context) ([]domain.GlobalAddon, error) {
	return s.repo.ListAddons(ctx)
}

func (s *MenuService) SaveAddon(ctx context.Context, addon domain.GlobalAddon) error {
	if strings.TrimSpace(addon.ID) == "" || strings.TrimSpace(addon.Name) == "" {
		return &domain.ValidationError{Reason: "addon id and name are required"}
	}
	if addon.Price.IsNegative() {
		return &domain.ValidationError{Reason: "addon price cannot be negative"}
	}
	return s.repo.SaveAddon(ctx, addon)
}

func (s *MenuService) DeleteAddon(ctx context.Context, id string) error {
	return s.repo.DeleteAddon(ctx, id)
}

// EnsureSeeded installs the seed catalog on first boot against an empty
// database. A catalog the admin already touched is left alone.
func (s *MenuService) EnsureSeeded(ctx context.Context) error {
	n, err := s.repo.CountMenuItems(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	if err := s.repo.ReplaceCatalog(ctx, SeedMenuItems(), SeedAddons()); err != nil {
		return err
	}
	s.lg.Info("menu_seeded", map[string]any{"items": len(SeedMenuItems()), "addons": len(SeedAddons())})
	return nil
}

func (s *MenuService) ResetToSeed(ctx context.Context) error {
	if err := s.repo.ReplaceCatalog(ctx, SeedMenuItems(), SeedAddons()); err != nil {
		return err
	}
	s.lg.Info("menu_reset_to_seed", nil)
	return nil
}
