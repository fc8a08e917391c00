package transactions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/addrwatch/btctracker/internal/btcrpc/rawaddr"
	"github.com/addrwatch/btctracker/internal/controller"
	"github.com/addrwatch/btctracker/internal/utils/config"
	"github.com/addrwatch/btctracker/internal/utils/logger"
)

type transactionsHandler struct {
	controller controller.IController
	logger     *logger.Logger
	appConfig  *config.AppConfig
}

func New(ctrl controller.IController, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &transactionsHandler{
		controller: ctrl,
		logger:     logger,
		appConfig:  appConfig,
	}
}

// Fetch triggers a fetch of the address's history and caches the result.
func (h *transactionsHandler) Fetch(c *gin.Context) {
	address := c.Param("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	result, err := h.controller.Fetch(address)
	if err != nil {
		status := fetchErrorStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, FetchResponse{
		Address:   result.Address,
		TxCount:   result.TxCount,
		FetchedAt: result.FetchedAt,
	})
}

// List returns the filtered table rows and the bucketed series for the
// cached address. Filtering never fails: an empty cache or criteria that
// match nothing yield empty lists.
func (h *transactionsHandler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.controller.Transactions(req.toCriteria())

	rows := make([]TransactionView, 0, len(result.Transactions))
	for _, r := range result.Transactions {
		rows = append(rows, TransactionView{
			Hash:      r.Hash,
			Timestamp: r.Timestamp,
			AmountBTC: r.AmountBTC(),
		})
	}

	points := make([]SeriesPointView, 0, len(result.Series.Points))
	for _, p := range result.Series.Points {
		points = append(points, SeriesPointView{
			Bucket:   p.Bucket,
			Count:    p.Count,
			TotalBTC: p.Total.ToBTC(),
		})
	}

	resp := ListResponse{
		Address:      result.Address,
		Total:        len(rows),
		Transactions: rows,
		Series: SeriesView{
			Chart:  string(result.Series.Chart),
			Points: points,
		},
	}
	if !result.FetchedAt.IsZero() {
		resp.FetchedAt = &result.FetchedAt
	}

	c.JSON(http.StatusOK, resp)
}

// fetchErrorStatus maps the fetch error taxonomy onto HTTP statuses; each
// class keeps its own user-visible message.
func fetchErrorStatus(err error) int {
	var netErr *rawaddr.NetworkError
	var parseErr *rawaddr.ParseError

	switch {
	case errors.Is(err, controller.ErrFetchInFlight):
		return http.StatusConflict
	case errors.Is(err, rawaddr.ErrAddressNotFound):
		return http.StatusNotFound
	case errors.As(err, &netErr), errors.As(err, &parseErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
