package domain

// CatalogOption платная опция услуги (марка масла, производитель колодок и т.п.)
type CatalogOption struct {
	ID        int64
	Label     string  // полная подпись, например "Castrol Magnatec — синтетика"
	Surcharge float64 // доплата за единицу
}

// CatalogService услуга из прайс-листа сайта
type CatalogService struct {
	ID              int64
	Title           string
	BasePrice       float64
	DurationMinutes int
	Options         []CatalogOption
}

// OptionByID возвращает опцию услуги по ID
func (s CatalogService) OptionByID(id int64) (CatalogOption, bool) {
	for _, opt := range s.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return CatalogOption{}, false
}

// SelectionRecord is a single user selection as reported by the UI:
// a catalog service, a quantity and an optionally chosen paid option.
type SelectionRecord struct {
	ServiceID int64
	Quantity  int    // значения <= 0 трактуются как 1
	OptionID  *int64 // nil = без опции
}

// SelectedOption выбранная платная опция внутри позиции
type SelectedOption struct {
	Label            string
	SurchargePerUnit float64
}

// ServiceItem is a resolved, priced selection line. Rebuilt from the raw
// selection on every recompute, never stored.
type ServiceItem struct {
	Title           string
	BasePrice       float64
	DurationMinutes int
	Quantity        int // всегда >= 1
	SelectedOption  *SelectedOption
}

// UnitPrice возвращает цену за единицу с учётом доплаты за опцию
func (i ServiceItem) UnitPrice() float64 {
	if i.SelectedOption == nil {
		return i.BasePrice
	}
	return i.BasePrice + i.SelectedOption.SurchargePerUnit
}

// LineTotal возвращает стоимость позиции
func (i ServiceItem) LineTotal() float64 {
	return i.UnitPrice() * float64(i.Quantity)
}

// LineDurationMinutes возвращает суммарную длительность позиции
func (i ServiceItem) LineDurationMinutes() int {
	return i.DurationMinutes * i.Quantity
}

// PriceSummary aggregate over the current selection.
// Count is the number of selected lines, not the sum of quantities.
type PriceSummary struct {
	Total                float64
	Count                int
	TotalDurationMinutes int
}
