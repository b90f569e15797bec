// Package transport exposes the dashboard REST API consumed by the browser UI.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"github.com/choikj7007-ai/croncoin-dashboard/internal/model"
)

const walletTransactionCount = 20

var blockHashRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

type (
	// NodeAPI is the passthrough surface proxied straight to the node.
	NodeAPI interface {
		BlockchainInfo() (json.RawMessage, error)
		MempoolInfo() (json.RawMessage, error)
		NetworkInfo() (json.RawMessage, error)
		PeerInfo() (json.RawMessage, error)
		MiningInfo() (json.RawMessage, error)
		RawTransaction(txid string) (json.RawMessage, error)
		WalletInfo() (json.RawMessage, error)
		Balances() (json.RawMessage, error)
		ListTransactions(count int) (json.RawMessage, error)
		NewAddress() (string, error)
		SendToAddress(address string, amount float64) (string, error)
		GenerateToAddress(numBlocks int64, address string) (json.RawMessage, error)
	}

	// Explorer serves enriched block lookups.
	Explorer interface {
		BlockByHash(ctx context.Context, hashHex string) (*model.BlockSummary, error)
		BlockByHeight(ctx context.Context, height int64) (*model.BlockSummary, error)
	}

	// RichList builds or returns the cached rich-list snapshot.
	RichList interface {
		Build(ctx context.Context) (*model.RichListSnapshot, error)
	}

	// RecentBlocks reads the watcher feed.
	RecentBlocks interface {
		RecentBlocks(ctx context.Context, limit int) ([]model.RecentBlock, error)
	}
)

// DashboardHandler routes the /api endpoints.
type DashboardHandler struct {
	node     NodeAPI
	explorer Explorer
	richlist RichList
	recent   RecentBlocks
	logger   *zap.Logger
}

// NewDashboardHandler returns a DashboardHandler. recent may be nil when no
// feed store is configured; the endpoint then reports unavailable.
func NewDashboardHandler(node NodeAPI, explorer Explorer, richlist RichList, recent RecentBlocks, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		node:     node,
		explorer: explorer,
		richlist: richlist,
		recent:   recent,
		logger:   logger.Named("api"),
	}
}

// Register attaches all routes to the mux.
func (h *DashboardHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/blockchain", h.passthrough("blockchain", func() (json.RawMessage, error) { return h.node.BlockchainInfo() }))
	mux.HandleFunc("GET /api/mempool", h.passthrough("mempool", func() (json.RawMessage, error) { return h.node.MempoolInfo() }))
	mux.HandleFunc("GET /api/network", h.passthrough("network", func() (json.RawMessage, error) { return h.node.NetworkInfo() }))
	mux.HandleFunc("GET /api/peers", h.passthrough("peers", func() (json.RawMessage, error) { return h.node.PeerInfo() }))
	mux.HandleFunc("GET /api/mining", h.passthrough("mining", func() (json.RawMessage, error) { return h.node.MiningInfo() }))
	mux.HandleFunc("GET /api/wallet/info", h.passthrough("wallet info", func() (json.RawMessage, error) { return h.node.WalletInfo() }))
	mux.HandleFunc("GET /api/wallet/balance", h.passthrough("wallet balance", func() (json.RawMessage, error) { return h.node.Balances() }))
	mux.HandleFunc("GET /api/wallet/transactions", h.passthrough("wallet transactions", func() (json.RawMessage, error) {
		return h.node.ListTransactions(walletTransactionCount)
	}))

	mux.HandleFunc("GET /api/block/{hash}", h.handleBlockByHash)
	mux.HandleFunc("GET /api/blockheight/{height}", h.handleBlockByHeight)
	mux.HandleFunc("GET /api/tx/{txid}", h.handleTransaction)
	mux.HandleFunc("GET /api/richlist", h.handleRichList)
	mux.HandleFunc("GET /api/blocks/recent", h.handleRecentBlocks)
	mux.HandleFunc("GET /api/wallet/newaddress", h.handleNewAddress)

	mux.HandleFunc("POST /api/mine", h.handleMine)
	mux.HandleFunc("POST /api/wallet/send", h.handleSend)
}

func (h *DashboardHandler) passthrough(name string, call func() (json.RawMessage, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		result, err := call()
		if err != nil {
			h.writeError(w, http.StatusInternalServerError, name, err)
			return
		}
		h.writeJSON(w, http.StatusOK, result)
	}
}

func (h *DashboardHandler) handleBlockByHash(w http.ResponseWriter, r *http.Request) {
	hash := r.PathValue("hash")
	if !blockHashRe.MatchString(hash) {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid block hash")
		return
	}

	summary, err := h.explorer.BlockByHash(r.Context(), hash)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "block", err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) handleBlockByHeight(w http.ResponseWriter, r *http.Request) {
	height, err := strconv.ParseInt(r.PathValue("height"), 10, 64)
	if err != nil || height < 0 {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid block height")
		return
	}

	summary, err := h.explorer.BlockByHeight(r.Context(), height)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "block height", err)
		return
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *DashboardHandler) handleTransaction(w http.ResponseWriter, r *http.Request) {
	txid := r.PathValue("txid")
	if !blockHashRe.MatchString(txid) {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid txid")
		return
	}

	result, err := h.node.RawTransaction(txid)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "transaction", err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *DashboardHandler) handleRichList(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.richlist.Build(r.Context())
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "richlist", err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

func (h *DashboardHandler) handleRecentBlocks(w http.ResponseWriter, r *http.Request) {
	if h.recent == nil {
		h.writeErrorMessage(w, http.StatusServiceUnavailable, "recent blocks feed not configured")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeErrorMessage(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	blocks, err := h.recent.RecentBlocks(r.Context(), limit)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "recent blocks", err)
		return
	}
	h.writeJSON(w, http.StatusOK, blocks)
}

func (h *DashboardHandler) handleNewAddress(w http.ResponseWriter, _ *http.Request) {
	address, err := h.node.NewAddress()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "new address", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"address": address})
}

type mineRequest struct {
	NBlocks int64  `json:"nblocks"`
	Address string `json:"address"`
}

func (h *DashboardHandler) handleMine(w http.ResponseWriter, r *http.Request) {
	var req mineRequest
	if !h.readBody(w, r, &req) {
		return
	}
	if req.NBlocks <= 0 {
		req.NBlocks = 1
	}

	address := req.Address
	if address == "" {
		fresh, err := h.node.NewAddress()
		if err != nil {
			h.writeError(w, http.StatusInternalServerError, "mine address", err)
			return
		}
		address = fresh
	}

	blocks, err := h.node.GenerateToAddress(req.NBlocks, address)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "mine", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"blocks":  blocks,
		"address": address,
	})
}

type sendRequest struct {
	Address string  `json:"address"`
	Amount  float64 `json:"amount"`
}

func (h *DashboardHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if !h.readBody(w, r, &req) {
		return
	}
	if req.Address == "" || req.Amount <= 0 {
		h.writeErrorMessage(w, http.StatusBadRequest, "address and amount required")
		return
	}

	txid, err := h.node.SendToAddress(req.Address, req.Amount)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "send", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"txid": txid})
}

// readBody decodes a JSON body, treating an empty body as an empty object.
func (h *DashboardHandler) readBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		h.writeErrorMessage(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (h *DashboardHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response failed", zap.Error(err))
	}
}

func (h *DashboardHandler) writeError(w http.ResponseWriter, status int, operation string, err error) {
	h.logger.Warn("request failed", zap.String("operation", operation), zap.Error(err))
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *DashboardHandler) writeErrorMessage(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
