package pool

// PoolInterface defines the common interface for item pools
type PoolInterface[T any] interface {
	Get() *T          // Retrieves an item from the pool, nil if empty
	Put(item *T)      // Returns an item to the pool
	Len() int         // Number of pooled items
	Clear()           // Drops every pooled item
	Shrink(n int) int // Drops items until at most n remain, returns the number dropped
}

// Ensure that the backends implement PoolInterface
var (
	_ PoolInterface[any] = (*FreeList[any])(nil)
	_ PoolInterface[any] = (*Queue[any])(nil)
	_ PoolInterface[any] = (*Locked[any])(nil)
)
