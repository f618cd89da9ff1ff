package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fisk-dimension/internal/models"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultThreatKey = "fisk:threats"

// RedisThreatRepository stores threats as JSON values in a single hash keyed by threat id.
type RedisThreatRepository struct {
	client *goredis.Client
	key    string
	logger *zap.Logger
}

func NewRedisThreatRepository(client *goredis.Client, key string, logger *zap.Logger) *RedisThreatRepository {
	if key == "" {
		key = DefaultThreatKey
	}
	return &RedisThreatRepository{client: client, key: key, logger: logger}
}

// SeedIfAbsent writes each threat unless a threat with the same id already exists.
func (r *RedisThreatRepository) SeedIfAbsent(ctx context.Context, threats []*models.Threat) error {
	for _, t := range threats {
		data, err := json.Marshal(t)
		if err != nil {
			return err
		}
		if err := r.client.HSetNX(ctx, r.key, t.ID, data).Err(); err != nil {
			return fmt.Errorf("seed threat %s: %w", t.ID, err)
		}
	}
	return nil
}

func (r *RedisThreatRepository) Save(ctx context.Context, threat *models.Threat) error {
	data, err := json.Marshal(threat)
	if err != nil {
		return err
	}
	return r.client.HSet(ctx, r.key, threat.ID, data).Err()
}

func (r *RedisThreatRepository) Get(ctx context.Context, id string) (*models.Threat, error) {
	data, err := r.client.HGet(ctx, r.key, id).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var t models.Threat
	if err := json.Unmarshal([]byte(data), &t); err != nil {
		return nil, fmt.Errorf("decode threat %s: %w", id, err)
	}
	return &t, nil
}

func (r *RedisThreatRepository) List(ctx context.Context) ([]*models.Threat, error) {
	values, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, err
	}
	out := make([]*models.Threat, 0, len(values))
	for id, data := range values {
		var t models.Threat
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			r.logger.Warn("Skipping undecodable threat", zap.String("id", id), zap.Error(err))
			continue
		}
		out = append(out, &t)
	}
	return out, nil
}

func (r *RedisThreatRepository) UpdateStatus(ctx context.Context, id string, status models.ThreatStatus) (*models.Threat, error) {
	var updated models.Threat
	err := r.client.Watch(ctx, func(tx *goredis.Tx) error {
		data, err := tx.HGet(ctx, r.key, id).Result()
		if errors.Is(err, goredis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(data), &updated); err != nil {
			return fmt.Errorf("decode threat %s: %w", id, err)
		}
		updated.Status = status
		encoded, err := json.Marshal(&updated)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.HSet(ctx, r.key, id, encoded)
			return nil
		})
		return err
	}, r.key)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
