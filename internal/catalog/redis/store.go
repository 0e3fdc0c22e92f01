package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Picorims/game-hub/internal/model"
)

// Store keeps an imported catalog in Redis so servers can load it without the CSV
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis catalog store and verifies the connection
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Store{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis catalog store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Save replaces the stored catalog with games
func (s *Store) Save(ctx context.Context, games []model.Game) error {
	previous, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return err
	}

	// Delete the previous catalog and write the new one atomically
	pipe := s.client.TxPipeline()
	for _, name := range previous {
		pipe.Del(ctx, gameKey(model.GameName(name)))
	}
	pipe.Del(ctx, gamesIndexKey(), platformsIndexKey())

	platforms := make(map[model.PlatformName]struct{})
	for _, g := range games {
		data, err := json.Marshal(g)
		if err != nil {
			return err
		}
		pipe.Set(ctx, gameKey(g.Name), data, 0)
		pipe.SAdd(ctx, gamesIndexKey(), string(g.Name))
		for _, p := range g.Platforms() {
			platforms[p] = struct{}{}
		}
	}

	if len(platforms) > 0 {
		members := make([]interface{}, 0, len(platforms))
		for p := range platforms {
			members = append(members, string(p))
		}
		pipe.SAdd(ctx, platformsIndexKey(), members...)
	}

	_, err = pipe.Exec(ctx)
	return err
}

// Load reads every stored game. It fails with ErrCatalogEmpty when nothing was imported.
func (s *Store) Load(ctx context.Context) ([]model.Game, error) {
	exists, err := s.client.Exists(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrCatalogEmpty
	}

	names, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	games := make([]model.Game, 0, len(names))
	for _, name := range names {
		game, err := s.getGame(ctx, model.GameName(name))
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}
	return games, nil
}

// PlatformNames returns the stored platform names (unordered)
func (s *Store) PlatformNames(ctx context.Context) ([]model.PlatformName, error) {
	members, err := s.client.SMembers(ctx, platformsIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	names := make([]model.PlatformName, len(members))
	for i, m := range members {
		names[i] = model.PlatformName(m)
	}
	return names, nil
}

func (s *Store) getGame(ctx context.Context, name model.GameName) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, name)
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}
