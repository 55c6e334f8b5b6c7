package redislock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLock возвращается при ошибке обращения к Redis
var ErrLock = errors.New("redislock: redis error")

// Снимаем блокировку, только если она все еще наша
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker короткие блокировки на основе SET NX PX
// Используется, чтобы фоновые проходы не запускались одновременно на нескольких репликах
type Locker struct {
	rdb    redis.Cmdable
	prefix string
}

// NewLocker создает Locker; prefix добавляется к каждому ключу
func NewLocker(rdb redis.Cmdable, prefix string) *Locker {
	if prefix == "" {
		prefix = "lock"
	}
	return &Locker{rdb: rdb, prefix: prefix}
}

// TryLock пытается взять блокировку на ttl
// Возвращает функцию освобождения; если блокировка занята, ok=false
func (l *Locker) TryLock(ctx context.Context, name string, ttl time.Duration) (release func(), ok bool, err error) {
	key := l.prefix + ":" + name
	token := uuid.NewString()

	acquired, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("%w: SETNX %s: %v", ErrLock, key, err)
	}
	if !acquired {
		return nil, false, nil
	}

	release = func() {
		// контекст прохода к этому моменту может быть уже отменен
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err()
	}
	return release, true, nil
}

// LocalLocker блокировка в пределах процесса, когда Redis выключен
type LocalLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

// NewLocalLocker создает LocalLocker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{held: make(map[string]bool)}
}

// TryLock берет блокировку по имени; ttl не используется
func (l *LocalLocker) TryLock(_ context.Context, name string, _ time.Duration) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[name] {
		return nil, false, nil
	}
	l.held[name] = true

	return func() {
		l.mu.Lock()
		delete(l.held, name)
		l.mu.Unlock()
	}, true, nil
}
