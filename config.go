package roster

// Config holds global configuration for the roster system
var Config config = config{
	initialEntityCapacity: 256,
	queryCacheLimit:       64,
}

type config struct {
	initialEntityCapacity int
	queryCacheLimit       int
}

// SetInitialEntityCapacity sets the slot capacity allocators and dense
// storages reserve up front. Affects managers created afterwards.
func (c *config) SetInitialEntityCapacity(n int) {
	if n > 0 {
		c.initialEntityCapacity = n
	}
}

// SetQueryCacheLimit caps how many named queries a manager accepts.
func (c *config) SetQueryCacheLimit(n int) {
	if n > 0 {
		c.queryCacheLimit = n
	}
}
