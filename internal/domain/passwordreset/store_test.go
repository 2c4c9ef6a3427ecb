package passwordreset

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyHidesToken(t *testing.T) {
	k := key("plain-token")

	assert.True(t, strings.HasPrefix(k, keyPrefix))
	assert.NotContains(t, k, "plain-token")
	assert.Len(t, strings.TrimPrefix(k, keyPrefix), 64)
	assert.Equal(t, k, key("plain-token"))
	assert.NotEqual(t, k, key("other-token"))
}

// memoryRedis answers SET and GETDEL in process so the client never dials.
type memoryRedis struct {
	mu   sync.Mutex
	data map[string]string
	args map[string][]interface{}
}

func newMemoryClient() (*redis.Client, *memoryRedis) {
	m := &memoryRedis{data: map[string]string{}, args: map[string][]interface{}{}}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	rdb.AddHook(m)
	return rdb, m
}

func (m *memoryRedis) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, fmt.Errorf("memory redis does not dial %s", addr)
	}
}

func (m *memoryRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (m *memoryRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		m.mu.Lock()
		defer m.mu.Unlock()

		args := cmd.Args()
		switch cmd.Name() {
		case "set":
			k := fmt.Sprint(args[1])
			m.data[k] = fmt.Sprint(args[2])
			m.args[k] = args
			cmd.(*redis.StatusCmd).SetVal("OK")
			return nil
		case "getdel":
			k := fmt.Sprint(args[1])
			val, ok := m.data[k]
			if !ok {
				return redis.Nil
			}
			delete(m.data, k)
			cmd.(*redis.StringCmd).SetVal(val)
			return nil
		}
		return fmt.Errorf("memory redis: unsupported command %q", cmd.Name())
	}
}

func TestRedisStoreConsumeIsSingleUse(t *testing.T) {
	rdb, mem := newMemoryClient()
	store := NewRedisStore(rdb)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "reset-me", 42, 15*time.Minute))

	mem.mu.Lock()
	_, rawStored := mem.data["reset-me"]
	_, hashedStored := mem.data[key("reset-me")]
	setArgs := mem.args[key("reset-me")]
	mem.mu.Unlock()
	assert.False(t, rawStored, "plaintext token must not be a key")
	assert.True(t, hashedStored)
	require.Len(t, setArgs, 5)
	assert.Equal(t, "ex", setArgs[3])

	userID, err := store.Consume(ctx, "reset-me")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)

	_, err = store.Consume(ctx, "reset-me")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedisStoreUnknownToken(t *testing.T) {
	rdb, _ := newMemoryClient()
	store := NewRedisStore(rdb)

	_, err := store.Consume(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedisStoreCorruptEntry(t *testing.T) {
	rdb, mem := newMemoryClient()
	store := NewRedisStore(rdb)

	mem.data[key("broken")] = "not-a-number"

	_, err := store.Consume(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTokenNotFound)
	assert.Contains(t, err.Error(), "corrupt reset token entry")
}
