package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hashes/internal/board"
	"github.com/samber/lo"
)

const winningHashesKey = "winning-hashes"

var ErrCorruptedHash = errors.New("stored hash is corrupted")

type HashRepository interface {
	ReplaceAll(ctx context.Context, hashes []board.Hash) error
	List(ctx context.Context) ([]board.Hash, error)
	Contains(ctx context.Context, hash board.Hash) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type dbHash struct {
	client *redis.Client
}

func NewHashRepository(client *redis.Client) HashRepository {
	return &dbHash{
		client: client,
	}
}

// ReplaceAll - swaps the stored list for the given one in a single transaction.
func (that *dbHash) ReplaceAll(ctx context.Context, hashes []board.Hash) error {
	members := lo.Map(hashes, func(hash board.Hash, _ int) redis.Z {
		return redis.Z{Score: float64(hash), Member: member(hash)}
	})

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, winningHashesKey)
		if len(members) > 0 {
			pipe.ZAdd(ctx, winningHashesKey, members...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace hashes: %w", err)
	}

	return nil
}

// List - stored hashes in ascending order.
func (that *dbHash) List(ctx context.Context) ([]board.Hash, error) {
	members, err := that.client.ZRange(ctx, winningHashesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list hashes: %w", err)
	}

	hashes := make([]board.Hash, 0, len(members))
	for _, m := range members {
		hash, err := board.ParseHash(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrCorruptedHash, m, err)
		}
		hashes = append(hashes, hash)
	}

	return hashes, nil
}

func (that *dbHash) Contains(ctx context.Context, hash board.Hash) (bool, error) {
	err := that.client.ZScore(ctx, winningHashesKey, member(hash)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to look up hash %d: %w", hash, err)
	}

	return true, nil
}

func (that *dbHash) Count(ctx context.Context) (int64, error) {
	count, err := that.client.ZCard(ctx, winningHashesKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count hashes: %w", err)
	}

	return count, nil
}

func member(hash board.Hash) string {
	return strconv.FormatUint(uint64(hash), 10)
}
