package repository

//go:generate go run go.uber.org/mock/mockgen -source=./block.go -destination=../mocks/block_mock.go -package=mocks

import (
	"context"
	"dockhub/infras/otel"
	"dockhub/internal/domains/dock/model"
	"dockhub/shared/constant"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const blocksKey = "dock:blocks"

var ErrBlockNotFound = errors.New("dock block not found")

// BlockStore keeps manual dock holds in one redis hash shared by every CSR session.
type BlockStore interface {
	Put(ctx context.Context, block model.Block) error
	Remove(ctx context.Context, dockNumber string) error
	All(ctx context.Context) (map[string]model.Block, error)
}

type blockStore struct {
	client *redis.Client
	otel   otel.Otel
}

func NewBlockStore(client *redis.Client, otel otel.Otel) BlockStore {
	return &blockStore{
		client: client,
		otel:   otel,
	}
}

func (b *blockStore) Put(ctx context.Context, block model.Block) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dock_block.Put")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	value, err := json.Marshal(block)
	if err != nil {
		return fmt.Errorf("failed to marshal dock block: %w", err)
	}

	if err = b.client.HSet(ctx, blocksKey, block.DockNumber, value).Err(); err != nil {
		log.Error().Err(err).Str("dock", block.DockNumber).Msg("failed to store dock block")

		return fmt.Errorf("failed to store dock block: %w", err)
	}

	return nil
}

// Remove returns ErrBlockNotFound when the dock holds no block.
func (b *blockStore) Remove(ctx context.Context, dockNumber string) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dock_block.Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	removed, err := b.client.HDel(ctx, blocksKey, dockNumber).Result()
	if err != nil {
		log.Error().Err(err).Str("dock", dockNumber).Msg("failed to remove dock block")

		return fmt.Errorf("failed to remove dock block: %w", err)
	}

	if removed == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// All skips entries that no longer decode.
func (b *blockStore) All(ctx context.Context) (res map[string]model.Block, err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dock_block.All")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	values, err := b.client.HGetAll(ctx, blocksKey).Result()
	if err != nil {
		log.Error().Err(err).Msg("failed to load dock blocks")

		return nil, fmt.Errorf("failed to load dock blocks: %w", err)
	}

	res = make(map[string]model.Block, len(values))

	for dockNumber, value := range values {
		var block model.Block
		if err := json.Unmarshal([]byte(value), &block); err != nil {
			log.Warn().Err(err).Str("dock", dockNumber).Msg("skipping malformed dock block")

			continue
		}

		res[dockNumber] = block
	}

	return res, nil
}
