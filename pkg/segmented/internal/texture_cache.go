package internal

const defaultMaxCacheSize = 16

// TextureCache is a small LRU cache for rendered label bitmaps or GPU
// textures. The release function, if set, is called for every evicted or
// destroyed entry.
type TextureCache[T any] struct {
	textures map[string]T
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
	release  func(T)
}

func NewTextureCache[T any](release func(T)) *TextureCache[T] {
	return NewTextureCacheWithSize(defaultMaxCacheSize, release)
}

func NewTextureCacheWithSize[T any](maxSize int, release func(T)) *TextureCache[T] {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache[T]{
		textures: make(map[string]T),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
		release:  release,
	}
}

func (c *TextureCache[T]) Get(key string) (T, bool) {
	if texture, exists := c.textures[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return texture, true
	}
	var zero T
	return zero, false
}

func (c *TextureCache[T]) Set(key string, texture T) {
	// If key already exists, just update and move to end
	if old, exists := c.textures[key]; exists {
		c.textures[key] = texture
		c.moveToEnd(key)
		if c.release != nil {
			c.release(old)
		}
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *TextureCache[T]) Len() int {
	return len(c.order)
}

func (c *TextureCache[T]) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache[T]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, exists := c.textures[oldest]; exists {
		if c.release != nil {
			c.release(texture)
		}
		delete(c.textures, oldest)
	}
}

func (c *TextureCache[T]) Destroy() {
	if c.release != nil {
		for _, texture := range c.textures {
			c.release(texture)
		}
	}
	c.textures = make(map[string]T)
	c.order = c.order[:0]
}
