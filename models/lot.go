package models

// Lot types: a lot either grants physical product items or a discount.
const (
	LotTypeProduct  = "product"
	LotTypeDiscount = "discount"
)

// Rarity tiers, ordered from most to least likely.
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityPlatinum  = "platinum"
	RarityLegendary = "legendary"
)

// RarityWeights holds the draw probability weight per rarity tier.
var RarityWeights = map[string]float64{
	RarityCommon:    0.60,
	RarityRare:      0.25,
	RarityEpic:      0.10,
	RarityPlatinum:  0.04,
	RarityLegendary: 0.01,
}

// RarityColors holds the display color (hex) per rarity tier.
var RarityColors = map[string]string{
	RarityCommon:    "#9E9E9E",
	RarityRare:      "#2196F3",
	RarityEpic:      "#9C27B0",
	RarityPlatinum:  "#00BCD4",
	RarityLegendary: "#FFC107",
}

// LotItem is one physical product granted by a product-type lot.
type LotItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// Lot is a gacha-style reward unit. Product lots carry Items, discount lots
// carry DiscountPercent; the two are mutually exclusive.
type Lot struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Rarity          string    `json:"rarity"`
	LotType         string    `json:"lotType"`
	Items           []LotItem `json:"items,omitempty"`
	DiscountPercent float64   `json:"discountPercent,omitempty"`
	Active          bool      `json:"active"`
}
