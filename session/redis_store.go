package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const storePairScript = `
redis.call("SET", KEYS[1], ARGV[1])
redis.call("SET", KEYS[2], ARGV[2])
return 1
`

const clearPairScript = `
local existed = redis.call("EXISTS", KEYS[1])
redis.call("DEL", KEYS[1], KEYS[2])
return existed
`

var (
	storePairLua = redis.NewScript(storePairScript)
	clearPairLua = redis.NewScript(clearPairScript)
)

// RedisStorage defines a public type used by goConsole APIs.
//
// RedisStorage mirrors the session pair into two keys under a shared
// prefix. Both keys are written and deleted inside single Lua scripts so
// no reader ever sees a token without its identity or vice versa.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage describes the newredisstorage operation and its observable behavior.
//
// NewRedisStorage may return an error when input validation, dependency calls, or security checks fail.
func NewRedisStorage(client *redis.Client, prefix string) (*RedisStorage, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if prefix == "" {
		prefix = "goconsole"
	}
	return &RedisStorage{client: client, prefix: prefix}, nil
}

func (r *RedisStorage) tokenKey() string    { return r.prefix + ":" + tokenSlot }
func (r *RedisStorage) identityKey() string { return r.prefix + ":" + identitySlot }

// Load describes the load operation and its observable behavior.
func (r *RedisStorage) Load(ctx context.Context) (string, []byte, bool, error) {
	vals, err := r.client.MGet(ctx, r.tokenKey(), r.identityKey()).Result()
	if err != nil {
		return "", nil, false, errors.Join(ErrStorageUnavailable, err)
	}
	if len(vals) != 2 {
		return "", nil, false, nil
	}

	token, _ := vals[0].(string)
	identity, _ := vals[1].(string)
	if token == "" || identity == "" {
		return "", nil, false, nil
	}
	return token, []byte(identity), true, nil
}

// Store describes the store operation and its observable behavior.
func (r *RedisStorage) Store(ctx context.Context, token string, identity []byte) error {
	err := storePairLua.Run(ctx, r.client,
		[]string{r.tokenKey(), r.identityKey()},
		token, string(identity),
	).Err()
	if err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}
	return nil
}

// Clear describes the clear operation and its observable behavior.
func (r *RedisStorage) Clear(ctx context.Context) error {
	err := clearPairLua.Run(ctx, r.client,
		[]string{r.tokenKey(), r.identityKey()},
	).Err()
	if err != nil {
		return errors.Join(ErrStorageUnavailable, err)
	}
	return nil
}
