package models

// ShopItem is a purchasable reward in the points shop
type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	ImageURL    string `json:"imageUrl"`
}

// ShopItemWithStatus combines a shop item with the student's ownership state
type ShopItemWithStatus struct {
	Item       ShopItem `json:"item"`
	Owned      bool     `json:"owned"`
	Affordable bool     `json:"affordable"`
}
