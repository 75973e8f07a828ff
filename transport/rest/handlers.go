package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-hashes/internal/board"
	"github.com/rocketscienceinc/tictactoe-hashes/internal/entity"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)

	BoardHandler(w http.ResponseWriter, r *http.Request)
	WinningHandler(w http.ResponseWriter, r *http.Request)
	IndexedHandler(w http.ResponseWriter, r *http.Request)
}

type indexService interface {
	Lookup(hash board.Hash) (*entity.BoardView, error)
	Winning(ctx context.Context) ([]board.Hash, error)
	IsIndexed(ctx context.Context, hash board.Hash) (bool, error)
}

type handlers struct {
	logger       *slog.Logger
	indexService indexService
}

func NewHandlers(logger *slog.Logger, indexService indexService) Handlers {
	return &handlers{
		logger:       logger.With("component", "rest"),
		indexService: indexService,
	}
}

// BoardHandler - GET /boards/{hash}.
func (that *handlers) BoardHandler(w http.ResponseWriter, r *http.Request) {
	hash, err := board.ParseHash(r.PathValue("hash"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view, err := that.indexService.Lookup(hash)
	if err != nil {
		that.logger.Error("failed to look up board", "hash", hash, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, view)
}

// WinningHandler - GET /boards/winning.
func (that *handlers) WinningHandler(w http.ResponseWriter, r *http.Request) {
	hashes, err := that.indexService.Winning(r.Context())
	if err != nil {
		that.logger.Error("failed to list winning hashes", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if hashes == nil {
		hashes = []board.Hash{}
	}

	that.writeJSON(w, hashes)
}

// IndexedHandler - GET /boards/{hash}/indexed.
func (that *handlers) IndexedHandler(w http.ResponseWriter, r *http.Request) {
	hash, err := board.ParseHash(r.PathValue("hash"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := that.indexService.IsIndexed(r.Context(), hash)
	if err != nil {
		that.logger.Error("failed to check hash", "hash", hash, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	that.writeJSON(w, struct {
		Hash    board.Hash `json:"hash"`
		Indexed bool       `json:"indexed"`
	}{Hash: hash, Indexed: ok})
}

func (that *handlers) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}
