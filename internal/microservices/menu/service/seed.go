package service

import (
	"github.com/shopspring/decimal"

	"patio-system/internal/domain"
	"patio-system/internal/pricing"
)

// Seed data for the patio catalog. Choice lists come from the legacy
// catalog export, so labels may carry embedded price annotations; the
// legacy parser lifts those into structured modifiers once, here.

var proteinChoices = []string{"Chicken", "Beef", "Plant Based"}

var sidesChoices = []string{
	"Fries",
	"Onion Rings",
	"Caesar Salad",
	"House Salad",
	"Upgrade to Poutine (+$2.00)",
}

var wingStyleChoices = []string{"Tossed", "Dip on Side"}

func day(d int) *int { return &d }

func price(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func selectOption(id, name string, choices []string, required bool) domain.MenuOption {
	return domain.MenuOption{
		ID:       id,
		Name:     name,
		Type:     domain.OptionSelect,
		Choices:  pricing.ParseLegacyChoices(choices),
		Required: required,
	}
}

func textOption(id, name string, required bool) domain.MenuOption {
	return domain.MenuOption{ID: id, Name: name, Type: domain.OptionText, Required: required}
}

// SeedAddons is the initial set of flat-priced extras, offered on every item.
func SeedAddons() []domain.GlobalAddon {
	return []domain.GlobalAddon{
		{ID: "addon_brisket", Name: "Add Brisket", Price: price(2)},
		{ID: "addon_chicken", Name: "Add Chicken", Price: price(2)},
		{ID: "addon_shrimp", Name: "Add Shrimp", Price: price(2)},
	}
}

// SeedMenuItems is the initial patio menu: day-gated weekly specials plus
// the regular lineup.
func SeedMenuItems() []domain.MenuItem {
	return []domain.MenuItem{
		// Weekly specials
		{
			ID: "spec_tues", Name: "2 Seasonal Tacos & Chips", Description: "Tuesday Special",
			BasePrice: price(8), Category: domain.CategorySpecial, AvailableDay: day(2),
			Options: []domain.MenuOption{
				selectOption("opt_prot", "Choice of Protein", proteinChoices, true),
			},
		},
		{
			ID: "spec_wed", Name: "Chicken Wings (Special)", Description: "Wednesday Special",
			BasePrice: price(10), Category: domain.CategorySpecial, AvailableDay: day(3),
			Options: []domain.MenuOption{
				selectOption("opt_wing_style", "Preparation", wingStyleChoices, true),
				textOption("opt_wing_flav", "Wing Flavor", true),
			},
		},
		{
			ID: "spec_thurs", Name: "Burger", Description: "Thursday Special",
			BasePrice: price(12), Category: domain.CategorySpecial, AvailableDay: day(4),
			Options: []domain.MenuOption{
				selectOption("opt_prot", "Choice of Protein", []string{"Chicken", "Beef", "Vegetarian"}, true),
				selectOption("opt_side", "Choice of Side", sidesChoices, true),
			},
		},
		{
			ID: "spec_fri", Name: "Steak Sandwich", Description: "Friday Special",
			BasePrice: price(16), Category: domain.CategorySpecial, AvailableDay: day(5),
			Options: []domain.MenuOption{
				textOption("opt_doneness", "Degree of Doneness", true),
				selectOption("opt_side1", "First Side", sidesChoices, true),
				selectOption("opt_side2", "Second Side", sidesChoices, true),
			},
		},

		// Regular menu
		{ID: "reg_fries", Name: "French Fries", BasePrice: price(4), Category: domain.CategoryRegular},
		{ID: "reg_poutine_gouda", Name: "Smoked Gouda Poutine", BasePrice: price(8), Category: domain.CategoryRegular},
		{ID: "reg_poutine_brisket", Name: "Spiced Brisket Poutine", BasePrice: price(10), Category: domain.CategoryRegular},
		{
			ID: "reg_nash_chic", Name: "Nashville Crispy Chicken Sandwich",
			BasePrice: price(12), Category: domain.CategoryRegular,
			Options: []domain.MenuOption{selectOption("opt_side", "Choice of Side", sidesChoices, true)},
		},
		{
			ID: "reg_buff_plant", Name: "Buffalo Plant Forward Crispy Chicken Sandwich",
			BasePrice: price(12), Category: domain.CategoryRegular,
			Options: []domain.MenuOption{selectOption("opt_side", "Choice of Side", sidesChoices, true)},
		},
		{
			ID: "reg_wings", Name: "Chicken Wings",
			BasePrice: price(12), Category: domain.CategoryRegular,
			Options: []domain.MenuOption{
				selectOption("opt_wing_style", "Preparation", wingStyleChoices, true),
				textOption("opt_wing_flav", "Wing Flavor", true),
			},
		},
		{ID: "reg_ginger_bowl", Name: "Ginger Beef Stirfry Bowl", Description: "With rice noodles", BasePrice: price(14), Category: domain.CategoryRegular},
		{ID: "reg_coco_shrimp", Name: "Coconut Shrimp", Description: "With dip", BasePrice: price(12), Category: domain.CategoryRegular},
		{ID: "reg_spring_rolls", Name: "Vegetable Spring Rolls", BasePrice: price(6), Category: domain.CategoryRegular},
		{ID: "reg_salad", Name: "Mandarin Salad", Description: "Walnuts and lemon poppyseed dressing", BasePrice: price(6), Category: domain.CategoryRegular},
		{ID: "reg_flatbread", Name: "Crispy BBQ Chicken Flatbread", BasePrice: price(12), Category: domain.CategoryRegular},
		{ID: "reg_mac", Name: "Baked Mac & Cheese", BasePrice: price(6), Category: domain.CategoryRegular},
		{
			ID: "reg_tenders", Name: "Chicken Tenders",
			BasePrice: price(12), Category: domain.CategoryRegular,
			Options: []domain.MenuOption{selectOption("opt_side", "Choice of Side", sidesChoices, true)},
		},
		{ID: "reg_mozza", Name: "Mozzarella Sticks", BasePrice: price(10), Category: domain.CategoryRegular},
		{
			ID: "reg_tacos", Name: "2 Seasonal Tacos", Description: "With tortilla chips",
			BasePrice: price(12), Category: domain.CategoryRegular,
			Options: []domain.MenuOption{selectOption("opt_prot", "Choice of Protein", proteinChoices, true)},
		},
		{
			ID: "reg_burger", Name: "Vendasta Burger",
			BasePrice: price(14), Category: domain.CategoryRegular,
			Options: []domain.MenuOption{
				selectOption("opt_prot", "Choice of Protein", proteinChoices, true),
				selectOption("opt_side", "Choice of Side", sidesChoices, true),
			},
		},
		{ID: "reg_steak_bites", Name: "Steak Bites", Description: "With sweet heat steak sauce", BasePrice: price(14), Category: domain.CategoryRegular},
	}
}
