package ports

import "context"

// Locker serialises read-modify-write spans per key. Lock blocks until the key
// is free or ctx is done; the returned function releases the lock.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
