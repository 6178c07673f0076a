package pipeline

type batchConfig struct {
	concurrent int
}

type BatchOption func(c *batchConfig)

// BatchConcurrency sets how many inputs RunBatch evaluates at the same time.
func BatchConcurrency(concurrent int) BatchOption {
	return func(c *batchConfig) {
		c.concurrent = concurrent
	}
}
