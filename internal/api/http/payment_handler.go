package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/service"
)

// PaymentHandler exposes payment creation, webhook intake and the cash admin
// surface.
type PaymentHandler struct {
	payments service.PaymentService
}

func NewPaymentHandler(payments service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type bookingRequest struct {
	FacilityID      int32   `json:"facility_id"`
	Date            string  `json:"date"`
	Slot            string  `json:"slot"`
	BookingTimeJSON string  `json:"booking_time_json"`
	Amount          float64 `json:"amount"`
}

func (r bookingRequest) context() domain.BookingContext {
	return domain.BookingContext{
		FacilityID:      r.FacilityID,
		Date:            r.Date,
		Slot:            r.Slot,
		BookingTimeJSON: r.BookingTimeJSON,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	clientSecret, orderID, err := h.payments.CreateCardPayment(r.Context(), userIDFromContext(r.Context()), req.Amount, req.context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"client_secret": clientSecret,
		"order_id":      orderID,
	})
}

type roomPaymentRequest struct {
	RoomID        int32   `json:"room_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	RoomCount     int32   `json:"room_count"`
	AdultCount    int32   `json:"adult_count"`
	ChildrenCount int32   `json:"children_count"`
	TotalNights   int32   `json:"total_nights"`
	Date          string  `json:"date"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
}

func (r roomPaymentRequest) roomPayment() *domain.RoomPayment {
	return &domain.RoomPayment{
		RoomID:        r.RoomID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		RoomCount:     r.RoomCount,
		AdultCount:    r.AdultCount,
		ChildrenCount: r.ChildrenCount,
		TotalNights:   r.TotalNights,
		Date:          r.Date,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
	}
}

func (h *PaymentHandler) CreateRoomPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req roomPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	clientSecret, intentID, err := h.payments.CreateRoomCardPayment(r.Context(), userIDFromContext(r.Context()), req.roomPayment())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"client_secret":     clientSecret,
		"payment_intent_id": intentID,
	})
}

func (h *PaymentHandler) CreateCashPayment(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	orderID, err := h.payments.CreateCashPayment(r.Context(), userIDFromContext(r.Context()), req.Amount, req.context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_id": orderID})
}

func (h *PaymentHandler) CreateRoomCashPayment(w http.ResponseWriter, r *http.Request) {
	var req roomPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	orderID, err := h.payments.CreateRoomCashPayment(r.Context(), userIDFromContext(r.Context()), req.roomPayment())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_id": orderID})
}

func (h *PaymentHandler) CreateFreeBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	orderID, err := h.payments.CreateFreeBooking(r.Context(), userIDFromContext(r.Context()), req.context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_id": orderID})
}

// HandleWebhook consumes gateway notifications. The raw body is required for
// signature verification; only a signature failure is rejected.
func (h *PaymentHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unreadable body"})
		return
	}

	if err := h.payments.HandleWebhookEvent(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *PaymentHandler) HandleRoomWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unreadable body"})
		return
	}

	if err := h.payments.HandleRoomWebhookEvent(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *PaymentHandler) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	orderID := r.URL.Query().Get("order_id")
	if orderID == "" {
		writeError(w, domain.NewValidationError("order_id is required"))
		return
	}

	details, err := h.payments.GetPaymentStatus(r.Context(), userIDFromContext(r.Context()), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *PaymentHandler) GetCheckoutSessionStatus(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		writeError(w, domain.NewValidationError("session_id is required"))
		return
	}

	status, err := h.payments.GetCheckoutSessionStatus(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"session_id": sessionID, "status": status})
}

func (h *PaymentHandler) GetRoomPaymentStatus(w http.ResponseWriter, r *http.Request) {
	intentID := r.URL.Query().Get("payment_intent_id")
	if intentID == "" {
		writeError(w, domain.NewValidationError("payment_intent_id is required"))
		return
	}

	rp, err := h.payments.GetRoomPaymentStatus(r.Context(), userIDFromContext(r.Context()), intentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rp)
}

func (h *PaymentHandler) GetCashPaymentExpiry(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	expiry, err := h.payments.GetCashPaymentExpiry(r.Context(), userIDFromContext(r.Context()), orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expiry)
}

func (h *PaymentHandler) ApproveCashPayment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID string `json:"order_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.OrderID == "" {
		writeError(w, domain.NewValidationError("order_id is required"))
		return
	}

	if err := h.payments.ApproveCashPayment(r.Context(), req.OrderID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_id": req.OrderID, "status": "approved"})
}

func (h *PaymentHandler) UpdateCashPaymentStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OrderID       string  `json:"order_id"`
		Status        *string `json:"status"`
		PaymentStatus *string `json:"payment_status"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.OrderID == "" {
		writeError(w, domain.NewValidationError("order_id is required"))
		return
	}

	if err := h.payments.UpdateCashPaymentStatus(r.Context(), req.OrderID, req.Status, req.PaymentStatus); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"order_id": req.OrderID, "status": "updated"})
}

func (h *PaymentHandler) ListPendingCashPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListPendingCashPayments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) ListAllPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.payments.ListAllPayments(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

// RegisterPaymentRoutes wires the payment endpoints onto the router
func RegisterPaymentRoutes(router *mux.Router, payments service.PaymentService, auth *AuthMiddleware) {
	h := NewPaymentHandler(payments)

	router.HandleFunc("/api/payment/create-payment-intent", auth.Require(h.CreatePaymentIntent)).Methods("POST")
	router.HandleFunc("/api/payment/create-room-payment-intent", auth.Require(h.CreateRoomPaymentIntent)).Methods("POST")
	router.HandleFunc("/api/payment/create-cash-payment", auth.Require(h.CreateCashPayment)).Methods("POST")
	router.HandleFunc("/api/payment/create-room-cash-payment", auth.Require(h.CreateRoomCashPayment)).Methods("POST")
	router.HandleFunc("/api/payment/create-free-booking", auth.Require(h.CreateFreeBooking)).Methods("POST")

	// Webhooks authenticate via signature, not bearer token.
	router.HandleFunc("/api/payment/webhook", h.HandleWebhook).Methods("POST")
	router.HandleFunc("/api/payment/room-webhook", h.HandleRoomWebhook).Methods("POST")

	router.HandleFunc("/api/payment/status", auth.Require(h.GetPaymentStatus)).Methods("GET")
	router.HandleFunc("/api/payment/session-status", auth.Require(h.GetCheckoutSessionStatus)).Methods("GET")
	router.HandleFunc("/api/payment/room-status", auth.Require(h.GetRoomPaymentStatus)).Methods("GET")
	router.HandleFunc("/api/payment/cash-expiry/{orderId}", auth.Require(h.GetCashPaymentExpiry)).Methods("GET")

	router.HandleFunc("/api/payment/approve-cash", auth.RequireAdmin(h.ApproveCashPayment)).Methods("PUT")
	router.HandleFunc("/api/payment/cash-status", auth.RequireAdmin(h.UpdateCashPaymentStatus)).Methods("PUT")
	router.HandleFunc("/api/payment/pending-cash", auth.RequireAdmin(h.ListPendingCashPayments)).Methods("GET")
	router.HandleFunc("/api/payment/all", auth.RequireAdmin(h.ListAllPayments)).Methods("GET")
}

func parseID(raw string) (int32, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("invalid id %q", raw)
	}
	return int32(id), nil
}
