package models

// PackItem is one bundled entry of a pack, with its standalone value.
type PackItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Pack is a fixed bundle of items sold at a combined price. The summed value
// of the contents is informational only and is not checked against Price.
type Pack struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Items         []PackItem `json:"items"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"originalPrice"`
	Color         string     `json:"color"`
	Tag           string     `json:"tag,omitempty"`
	Active        bool       `json:"active"`
}

// ContentsValue returns the summed standalone value of the bundled items.
func (p Pack) ContentsValue() float64 {
	var total float64
	for _, it := range p.Items {
		total += it.Value
	}
	return total
}
