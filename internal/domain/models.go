package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type MenuCategory string

const (
	CategorySpecial MenuCategory = "special"
	CategoryRegular MenuCategory = "regular"
	CategorySides   MenuCategory = "sides"
)

type OptionType string

const (
	OptionSelect OptionType = "select"
	OptionText   OptionType = "text"
)

// Choice is a single selectable value of a select-type option. The price
// modifier is a structured field; legacy data encodes it inside the label
// (see the pricing package's legacy parser).
type Choice struct {
	Label         string          `json:"label"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

type MenuOption struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     OptionType `json:"type"`
	Choices  []Choice   `json:"choices,omitempty"`
	Required bool       `json:"required,omitempty"`
}

type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Category    MenuCategory    `json:"category"`
	// AvailableDay restricts specials to one weekday (0=Sunday..6).
	// nil means always available.
	AvailableDay *int         `json:"available_day,omitempty"`
	Options      []MenuOption `json:"options,omitempty"`
	SoldOut      bool         `json:"sold_out,omitempty"`
}

// GlobalAddon is a flat-priced extra offered on every menu item.
type GlobalAddon struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// StringList holds an option answer that may be a single string or a list
// of strings. Legacy records store single answers as a bare JSON string,
// multi-select answers as an array; both shapes round-trip unchanged.
type StringList []string

func (s StringList) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]string(s))
}

func (s *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = StringList(many)
	return nil
}

func (s StringList) String() string { return strings.Join(s, ", ") }

// OptionSelection records one answered option on a cart item. ExtraCost is
// resolved when the item is added and never recomputed.
type OptionSelection struct {
	OptionName string          `json:"option_name"`
	Value      StringList      `json:"value"`
	ExtraCost  decimal.Decimal `json:"extra_cost"`
}

// CartItem is an immutable snapshot of one add-to-cart action. CartID is
// opaque and unique per action, not an identity of the menu item.
type CartItem struct {
	CartID          string            `json:"cart_id"`
	MenuItem        MenuItem          `json:"menu_item"`
	Quantity        int               `json:"quantity"`
	SelectedOptions []OptionSelection `json:"selected_options"`
	// ItemTotal is (base + extras) * quantity, frozen pre-discount.
	ItemTotal decimal.Decimal `json:"item_total"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
)

// Order is the persisted submission snapshot. Items, subtotal,
// discount_applied and final_total are write-once at creation; only status
// and buzzer_number mutate afterwards.
type Order struct {
	ID              string          `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	EmployeeEmail   string          `json:"employee_email"`
	Items           []CartItem      `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DiscountApplied bool            `json:"discount_applied"`
	FinalTotal      decimal.Decimal `json:"final_total"`
	Status          OrderStatus     `json:"status"`
	BuzzerNumber    string          `json:"buzzer_number,omitempty"`
}
