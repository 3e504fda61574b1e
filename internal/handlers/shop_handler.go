package handlers

import (
	"net/http"

	"ecolearn/internal/catalog"
	"ecolearn/internal/models"
	"ecolearn/internal/progression"
)

// ShopHandler serves the points shop
type ShopHandler struct {
	catalog *catalog.Catalog
	store   *progression.Store
}

// NewShopHandler creates a new shop handler
func NewShopHandler(cat *catalog.Catalog, store *progression.Store) *ShopHandler {
	return &ShopHandler{catalog: cat, store: store}
}

// ListItems returns the shop catalog with ownership and affordability
func (h *ShopHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	student := h.store.Student()

	items := h.catalog.ShopItems()
	views := make([]models.ShopItemWithStatus, 0, len(items))
	for _, item := range items {
		views = append(views, models.ShopItemWithStatus{
			Item:       item,
			Owned:      h.store.OwnsItem(item.ID),
			Affordable: student.EcoPoints >= item.Price,
		})
	}
	respondWithJSON(w, http.StatusOK, views)
}

// PurchaseItem spends points on a shop item
func (h *ShopHandler) PurchaseItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.catalog.ShopItemByID(r.PathValue("id"))
	if !ok {
		respondWithError(w, http.StatusNotFound, "Item not found", "", nil)
		return
	}

	purchased, err := h.store.PurchaseItem(item.ID, item.Price)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to purchase item", "Purchase failed", err)
		return
	}
	if !purchased {
		respondWithError(w, http.StatusConflict, "Not enough points or item already owned", "", nil)
		return
	}

	respondWithJSON(w, http.StatusOK, NewStudentView(h.store.Student(), h.store.OwnedItems()))
}
