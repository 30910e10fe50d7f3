package serializers

import "github.com/littlelemon/restaurant-api/models"

type MenuItemInput struct {
	Title     *string       `json:"title" validate:"required,min=1,max=255"`
	Price     *models.Price `json:"price" validate:"required"`
	Inventory *int          `json:"inventory" validate:"omitempty,min=-2147483648,max=2147483647"`
}

type MenuItemResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Inventory int    `json:"inventory"`
}

var menuItemFields = []field{
	{wire: "title", goName: "Title"},
	{wire: "price", goName: "Price"},
	{wire: "inventory", goName: "Inventory"},
}

// DecodeMenuItem validates a menu item body. With partial set, absent fields
// are left nil instead of being reported as missing.
func DecodeMenuItem(data Data, partial bool) (*MenuItemInput, error) {
	in := &MenuItemInput{}
	errs := ValidationError{}

	if raw, ok := data["title"]; ok {
		if v, msg := charValue(raw); msg != "" {
			errs.add("title", msg)
		} else {
			in.Title = &v
		}
	}
	if raw, ok := data["price"]; ok {
		if v, msg := priceValue(raw); msg != "" {
			errs.add("price", msg)
		} else {
			in.Price = &v
		}
	}
	if raw, ok := data["inventory"]; ok {
		if v, msg := intValue(raw); msg != "" {
			errs.add("inventory", msg)
		} else {
			in.Inventory = &v
		}
	}

	checkConstraints(in, selectFields(menuItemFields, data, partial), errs)
	if err := errs.orNil(); err != nil {
		return nil, err
	}
	return in, nil
}

// Record builds a complete menu item; inventory defaults to 0.
func (in *MenuItemInput) Record() models.MenuItem {
	var m models.MenuItem
	in.Apply(&m)
	return m
}

// Apply copies the supplied fields onto m.
func (in *MenuItemInput) Apply(m *models.MenuItem) {
	if in.Title != nil {
		m.Title = *in.Title
	}
	if in.Price != nil {
		m.Price = *in.Price
	}
	if in.Inventory != nil {
		m.Inventory = *in.Inventory
	}
}

func EncodeMenuItem(m *models.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:        m.ID,
		Title:     m.Title,
		Price:     m.Price.String(),
		Inventory: m.Inventory,
	}
}

func EncodeMenuItems(items []models.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, EncodeMenuItem(&items[i]))
	}
	return out
}

func selectFields(all []field, data Data, partial bool) []field {
	if !partial {
		return all
	}
	present := make([]field, 0, len(all))
	for _, f := range all {
		if _, ok := data[f.wire]; ok {
			present = append(present, f)
		}
	}
	return present
}
