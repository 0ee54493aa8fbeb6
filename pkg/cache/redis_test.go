package cache

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
)

// unreachableClient points at a closed port. The tests below never reach the
// network.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
}

func TestRedisCacheClearNeedsPrefix(t *testing.T) {
	c := NewRedisCacheFromClient(unreachableClient(), "")
	defer c.Close()

	n, err := c.Clear(context.Background())
	if err == nil {
		t.Fatal("Clear() without prefix should fail")
	}
	if n != 0 {
		t.Errorf("Clear() removed %d keys, want 0", n)
	}
}

func TestRedisCacheClose(t *testing.T) {
	c := NewRedisCacheFromClient(unreachableClient(), "statcard:")
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	ctx := context.Background()
	if _, hit, err := c.Get(ctx, "card:anna"); err == nil || hit {
		t.Errorf("Get() after Close = hit %v, err %v; want an error", hit, err)
	}
	if err := c.Set(ctx, "card:anna", []byte("<svg/>"), 0); err == nil {
		t.Error("Set() after Close should fail")
	}
}
