package httpapi

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"menu-order/order-svc/internal/catalog"
	"menu-order/order-svc/internal/domain"
	"menu-order/order-svc/internal/message"
	"menu-order/order-svc/internal/service"
	"menu-order/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"
)

type Handler struct {
	Menu      service.Catalog
	Carts     service.CartServiceInterface
	Checkout  service.CheckoutServiceInterface
	Locations service.LocationResolver
	Phrases   message.Phrases
	Log       *logger.Logger
}

func NewHandler(menu service.Catalog, carts service.CartServiceInterface, checkout service.CheckoutServiceInterface,
	locations service.LocationResolver, phrases message.Phrases, log *logger.Logger) *Handler {
	return &Handler{
		Menu:      menu,
		Carts:     carts,
		Checkout:  checkout,
		Locations: locations,
		Phrases:   phrases,
		Log:       log,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/items/{itemId}", h.getMenuItem).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/menu-items", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{instanceId}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/cart/items/{instanceId}/quantity", h.setQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/items/{instanceId}/increase", h.increase).Methods("POST")
	r.HandleFunc("/api/cart/items/{instanceId}/decrease", h.decrease).Methods("POST")
	r.HandleFunc("/api/cart/items/{instanceId}/instructions", h.setInstructions).Methods("PUT")
	r.HandleFunc("/api/cart/items/{instanceId}/options", h.setOptions).Methods("PUT")

	r.HandleFunc("/api/language", h.getLanguage).Methods("GET")
	r.HandleFunc("/api/language", h.setLanguage).Methods("PUT")
	r.HandleFunc("/api/phrases", h.getPhrases).Methods("GET")

	r.HandleFunc("/api/location/resolve", h.resolveLocation).Methods("POST")
	r.HandleFunc("/api/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/qrcode", h.getQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// session returns the caller's session id, issuing a new one when the
// request carries none.
func session(w http.ResponseWriter, r *http.Request) string {
	if id := r.Header.Get(SessionHeader); id != "" {
		return id
	}
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(SessionHeader, id)
	return id
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrScheduledTimeRequired),
		errors.Is(err, service.ErrInvalidScheduledTime),
		errors.Is(err, service.ErrInvalidOrderDetails),
		errors.Is(err, service.ErrInvalidLanguage),
		errors.Is(err, service.ErrForeignLink):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrLineItemNotFound),
		errors.Is(err, catalog.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrBelowMinimum):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log := h.Log
		if log == nil {
			log = logger.Discard()
		}
		log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, "Internal server error", status)
		return
	}
	http.Error(w, err.Error(), status)
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Menu.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.Menu.Item(r.Context(), mux.Vars(r)["itemId"])
	if err != nil {
		h.fail(w, r, err)
		return
	}

	inCart, err := h.Carts.QuantityFor(r.Context(), session(w, r), item.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"item":            item,
		"default_options": catalog.DefaultOptions(item),
		"in_cart":         inCart,
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	serviceType := domain.ServiceTakeaway
	switch raw := r.URL.Query().Get("service_type"); raw {
	case "", string(domain.ServiceTakeaway):
	case string(domain.ServiceDelivery):
		serviceType = domain.ServiceDelivery
	default:
		http.Error(w, "Invalid service_type", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.Get(r.Context(), session(w, r), serviceType)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Context(), session(w, r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req domain.AddItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ID == "" || req.Name == "" || req.Price < 0 || req.Quantity < 0 {
		http.Error(w, "Missing id or name, or negative price or quantity", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.Add(r.Context(), session(w, r), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var selection domain.MenuSelection
	if err := json.NewDecoder(r.Body).Decode(&selection); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if selection.ItemID == "" || selection.Quantity < 0 {
		http.Error(w, "Missing item_id or negative quantity", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.AddFromMenu(r.Context(), session(w, r), selection)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Remove(r.Context(), session(w, r), mux.Vars(r)["instanceId"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Quantity *float64 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Quantity == nil {
		http.Error(w, "Missing quantity", http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.SetQuantity(r.Context(), session(w, r), mux.Vars(r)["instanceId"], *payload.Quantity)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) increase(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Increase(r.Context(), session(w, r), mux.Vars(r)["instanceId"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) decrease(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Decrease(r.Context(), session(w, r), mux.Vars(r)["instanceId"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) setInstructions(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Instructions string `json:"instructions"`
		TogglePreset string `json:"toggle_preset"`
		Current      string `json:"current"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	instructions := payload.Instructions
	if payload.TogglePreset != "" {
		instructions = catalog.TogglePreset(payload.Current, payload.TogglePreset)
	}

	cart, err := h.Carts.SetInstructions(r.Context(), session(w, r), mux.Vars(r)["instanceId"], instructions)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) setOptions(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SelectedOptions map[string]string `json:"selected_options"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cart, err := h.Carts.SetOptions(r.Context(), session(w, r), mux.Vars(r)["instanceId"], payload.SelectedOptions)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func languageResponse(lang domain.Language) map[string]string {
	return map[string]string{
		"language":  string(lang),
		"direction": lang.Direction(),
	}
}

func (h *Handler) getLanguage(w http.ResponseWriter, r *http.Request) {
	lang, err := h.Carts.Language(r.Context(), session(w, r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, languageResponse(lang))
}

func (h *Handler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	lang := domain.Language(payload.Language)
	if err := h.Carts.SetLanguage(r.Context(), session(w, r), lang); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, languageResponse(lang))
}

// getPhrases serves the order-message phrase table; without ?lang= the
// session language is used.
func (h *Handler) getPhrases(w http.ResponseWriter, r *http.Request) {
	var lang domain.Language
	if raw := r.URL.Query().Get("lang"); raw != "" {
		parsed, ok := domain.ParseLanguage(raw)
		if !ok {
			http.Error(w, service.ErrInvalidLanguage.Error(), http.StatusBadRequest)
			return
		}
		lang = parsed
	} else {
		current, err := h.Carts.Language(r.Context(), session(w, r))
		if err != nil {
			h.fail(w, r, err)
			return
		}
		lang = current
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"language":  lang,
		"direction": lang.Direction(),
		"phrases":   h.Phrases.Table(lang),
	})
}

func (h *Handler) resolveLocation(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if payload.Latitude == nil || payload.Longitude == nil ||
		math.Abs(*payload.Latitude) > 90 || math.Abs(*payload.Longitude) > 180 {
		http.Error(w, "Invalid coordinates", http.StatusBadRequest)
		return
	}

	lang, err := h.Carts.Language(r.Context(), session(w, r))
	if err != nil {
		lang = domain.DefaultLanguage
	}

	writeJSON(w, http.StatusOK, h.Locations.Resolve(r.Context(), *payload.Latitude, *payload.Longitude, lang))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var details domain.OrderDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Checkout.Checkout(r.Context(), session(w, r), details)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Checkout.QRCode(r.URL.Query().Get("link"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qr)
}
