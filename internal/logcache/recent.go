package logcache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Entry is one recent-verification line as served by GET /logs.
type Entry struct {
	TS            string `json:"ts"`
	Verdict       string `json:"verdict"`
	Score         int    `json:"score"`
	CertificateID string `json:"certificateId"`
	RollNo        string `json:"rollNo"`
	Status        string `json:"status"`
}

const (
	keep     = 100
	redisKey = "credcheck:recent-verifications"
)

var (
	mu  sync.Mutex
	mem []Entry
	rdb *redis.Client
)

// Init wires the Redis-backed ring when REDIS_ADDR is set; otherwise the
// in-memory ring is used.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return
	}
	rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

// Push records an entry, newest first. Redis failures fall back to memory
// so a verification never fails on cache trouble.
func Push(e Entry) {
	if rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		b, err := json.Marshal(e)
		if err == nil {
			pipe := rdb.Pipeline()
			pipe.LPush(ctx, redisKey, b)
			pipe.LTrim(ctx, redisKey, 0, keep-1)
			if _, err = pipe.Exec(ctx); err == nil {
				return
			}
		}
		fmt.Println("logcache: redis push failed, using memory:", err)
	}

	mu.Lock()
	defer mu.Unlock()
	mem = append([]Entry{e}, mem...)
	if len(mem) > keep {
		mem = mem[:keep]
	}
}

// Recent returns up to n entries, newest first.
func Recent(n int) []Entry {
	if rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if raw, err := rdb.LRange(ctx, redisKey, 0, int64(n-1)).Result(); err == nil {
			out := make([]Entry, 0, len(raw))
			for _, s := range raw {
				var e Entry
				if json.Unmarshal([]byte(s), &e) == nil {
					out = append(out, e)
				}
			}
			return out
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if n > len(mem) {
		n = len(mem)
	}
	out := make([]Entry, n)
	copy(out, mem[:n])
	return out
}

// Reset clears the in-memory ring. Test helper.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	mem = nil
}
