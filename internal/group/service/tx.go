package service

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	id "cineclub/pkg/domain"
	dErrors "cineclub/pkg/domain-errors"
)

// StoreTx provides a transactional boundary for compound group mutations.
// Implementations either bind a database transaction to the context passed to
// fn or, in memory, hold a lock for the duration of fn.
type StoreTx interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	numGroupShards   = 64
	defaultTxTimeout = 5 * time.Second
)

// ShardedTx serializes compound mutations per group with a fixed set of
// mutexes. It does not roll back; callers order writes so that a failure
// leaves no partial state.
type ShardedTx struct {
	shards  [numGroupShards]sync.Mutex
	timeout time.Duration
}

// NewShardedTx returns an in-memory transaction runner.
func NewShardedTx() *ShardedTx {
	return &ShardedTx{timeout: defaultTxTimeout}
}

func (t *ShardedTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}

	timeout := t.timeout
	if timeout == 0 {
		timeout = defaultTxTimeout
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	shard := t.selectShard(ctx)
	t.shards[shard].Lock()
	defer t.shards[shard].Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx)
}

// selectShard hashes the group bound by withTxGroup, or uses shard 0.
func (t *ShardedTx) selectShard(ctx context.Context) int {
	groupID, ok := ctx.Value(txGroupKeyCtx).(id.GroupID)
	if !ok || groupID.IsNil() {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write(groupID[:])
	return int(h.Sum32() % numGroupShards)
}

type txGroupKey struct{}

var txGroupKeyCtx = txGroupKey{}

// withTxGroup tells the in-memory runner which group a transaction touches.
func withTxGroup(ctx context.Context, groupID id.GroupID) context.Context {
	return context.WithValue(ctx, txGroupKeyCtx, groupID)
}
