package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/you-humble/stock-dashboard/internal/converter"
	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/platform/logger"
	dashboardv1 "github.com/you-humble/stock-dashboard/pkg/api/dashboard/v1"
)

type DashboardService interface {
	Overview(ctx context.Context) model.DashboardOverview
	Stats(ctx context.Context) model.DashboardStats
	RecentTransactions(ctx context.Context, limit int) model.RecentTransactions
	PendingPurchaseOrders(ctx context.Context, limit int) model.PendingPurchaseOrders
	ProductsByCategory(ctx context.Context) model.CategoryBreakdown
	StockByLocation(ctx context.Context) model.LocationBreakdown
	LowStockProducts(ctx context.Context, limit int) model.LowStock
}

type PurchaseOrderService interface {
	PurchaseOrderDetail(ctx context.Context, id uuid.UUID) (*model.PurchaseOrderDetail, error)
}

type handler struct {
	dashboard DashboardService
	orders    PurchaseOrderService
	validate  *validator.Validate
	limitRule string
}

func NewDashboardHandler(
	dashboard DashboardService,
	orders PurchaseOrderService,
	maxLimit int,
) *handler {
	return &handler{
		dashboard: dashboard,
		orders:    orders,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		limitRule: fmt.Sprintf("min=1,max=%d", maxLimit),
	}
}

// Register mounts the dashboard API under /api/v1.
func (h *handler) Register(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", h.Overview)
			r.Get("/stats", h.Stats)
			r.Get("/transactions/recent", h.RecentTransactions)
			r.Get("/purchase-orders/pending", h.PendingPurchaseOrders)
			r.Get("/categories", h.Categories)
			r.Get("/locations/stock", h.LocationsStock)
			r.Get("/low-stock", h.LowStock)
		})
		r.Get("/purchase-orders/{id}", h.PurchaseOrder)
	})
}

func (h *handler) Overview(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, converter.OverviewToResponse(h.dashboard.Overview(r.Context())))
}

func (h *handler) Stats(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, converter.StatsToResponse(h.dashboard.Stats(r.Context())))
}

func (h *handler) RecentTransactions(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res := h.dashboard.RecentTransactions(r.Context(), limit)
	h.respond(w, r, http.StatusOK, converter.RecentTransactionsToResponse(res))
}

func (h *handler) PendingPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res := h.dashboard.PendingPurchaseOrders(r.Context(), limit)
	h.respond(w, r, http.StatusOK, converter.PendingPurchaseOrdersToResponse(res))
}

func (h *handler) Categories(w http.ResponseWriter, r *http.Request) {
	res := h.dashboard.ProductsByCategory(r.Context())
	h.respond(w, r, http.StatusOK, converter.CategoryBreakdownToResponse(res))
}

func (h *handler) LocationsStock(w http.ResponseWriter, r *http.Request) {
	res := h.dashboard.StockByLocation(r.Context())
	h.respond(w, r, http.StatusOK, converter.LocationBreakdownToResponse(res))
}

func (h *handler) LowStock(w http.ResponseWriter, r *http.Request) {
	limit, err := h.limit(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	res := h.dashboard.LowStockProducts(r.Context(), limit)
	h.respond(w, r, http.StatusOK, converter.LowStockToResponse(res))
}

func (h *handler) PurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, fmt.Errorf("invalid purchase order id: %w", model.ErrValidation))
		return
	}

	detail, err := h.orders.PurchaseOrderDetail(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, converter.PurchaseOrderDetailToResponse(detail))
}

// limit reads the optional limit query parameter. Zero means the service default.
func (h *handler) limit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer: %w", model.ErrValidation)
	}
	if err := h.validate.Var(limit, h.limitRule); err != nil {
		return 0, fmt.Errorf("limit must satisfy %s: %w", h.limitRule, model.ErrValidation)
	}

	return limit, nil
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	res := mapError(err)
	if res.Code == http.StatusInternalServerError {
		logger.Error(r.Context(), "dashboard request failed",
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
	}
	h.respond(w, r, res.Code, res)
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := writeJSON(w, status, body); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

func mapError(err error) dashboardv1.ErrorResponse {
	switch {
	case errors.Is(err, model.ErrValidation):
		return dashboardv1.ErrorResponse{ // 400
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	case errors.Is(err, model.ErrPurchaseOrderNotFound):
		return dashboardv1.ErrorResponse{ // 404
			Code:    http.StatusNotFound,
			Message: model.ErrPurchaseOrderNotFound.Error(),
		}
	case errors.Is(err, model.ErrRateLimited):
		return dashboardv1.ErrorResponse{ // 429
			Code:    http.StatusTooManyRequests,
			Message: err.Error(),
		}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, model.ErrServiceUnavailable):
		return dashboardv1.ErrorResponse{ // 503
			Code:    http.StatusServiceUnavailable,
			Message: model.ErrServiceUnavailable.Error(),
		}
	default:
		return dashboardv1.ErrorResponse{ // 500
			Code:    http.StatusInternalServerError,
			Message: internalMessage(err),
		}
	}
}

var loadFailures = []error{
	model.ErrPurchaseOrderLoad,
	model.ErrSupplierLoad,
	model.ErrLocationLoad,
	model.ErrPurchaseOrderItemsLoad,
	model.ErrProductsLoad,
}

// internalMessage names the failed read without exposing the cause.
func internalMessage(err error) string {
	for _, failure := range loadFailures {
		if errors.Is(err, failure) {
			return failure.Error()
		}
	}
	return "internal error"
}
