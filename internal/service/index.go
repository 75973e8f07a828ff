package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hashes/internal/board"
	"github.com/rocketscienceinc/tictactoe-hashes/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hashes/internal/generator"
)

type IndexService interface {
	Publish(ctx context.Context) (int, error)
	Lookup(hash board.Hash) (*entity.BoardView, error)
	Winning(ctx context.Context) ([]board.Hash, error)
	IsIndexed(ctx context.Context, hash board.Hash) (bool, error)
}

type hashRepo interface {
	ReplaceAll(ctx context.Context, hashes []board.Hash) error
	List(ctx context.Context) ([]board.Hash, error)
	Contains(ctx context.Context, hash board.Hash) (bool, error)
}

type indexService struct {
	logger  *slog.Logger
	workers int

	hashRepo hashRepo
}

func NewIndexService(logger *slog.Logger, hashRepo hashRepo, workers int) IndexService {
	return &indexService{
		logger:   logger,
		workers:  workers,
		hashRepo: hashRepo,
	}
}

// Publish - enumerates the legal winning boards and stores their hashes.
func (that *indexService) Publish(ctx context.Context) (int, error) {
	log := that.logger.With("method", "Publish", "workers", that.workers)

	hashes, err := generator.Enumerate(ctx, that.workers)
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate boards: %w", err)
	}

	if err = that.hashRepo.ReplaceAll(ctx, hashes); err != nil {
		return 0, fmt.Errorf("failed to store hashes: %w", err)
	}

	log.Info("winning hashes published", "count", len(hashes))

	return len(hashes), nil
}

func (that *indexService) Lookup(hash board.Hash) (*entity.BoardView, error) {
	b, err := board.Decode(hash, board.StartingMark)
	if err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}

	legal, winning := generator.Classify(b)

	return entity.NewBoardView(b, legal, winning), nil
}

func (that *indexService) Winning(ctx context.Context) ([]board.Hash, error) {
	hashes, err := that.hashRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve hashes from storage: %w", err)
	}

	return hashes, nil
}

func (that *indexService) IsIndexed(ctx context.Context, hash board.Hash) (bool, error) {
	ok, err := that.hashRepo.Contains(ctx, hash)
	if err != nil {
		return false, fmt.Errorf("failed to check hash: %w", err)
	}

	return ok, nil
}
