package monitor

import (
	"container/list"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// pathCache is a thread-safe LRU cache of compiled expr-lang programs, one
// per distinct attribute-path expression (e.g. "pos.name",
// "container_position.isolated"). Paths repeat heavily across a plan's
// steps and a ground truth's constraint list, so compiling once per path
// rather than per evaluation matters.
type pathCache struct {
	capacity int
	entries  map[string]*list.Element
	lru      *list.List
	mu       sync.RWMutex
}

type pathCacheEntry struct {
	path    string
	program *vm.Program
}

func newPathCache(capacity int) *pathCache {
	if capacity <= 0 {
		capacity = 256
	}
	return &pathCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

func (c *pathCache) get(path string) (*vm.Program, bool) {
	// A hit reorders the LRU list, so even a lookup takes the write lock.
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[path]; ok {
		c.lru.MoveToFront(el)
		return el.Value.(*pathCacheEntry).program, true
	}
	return nil, false
}

func (c *pathCache) put(path string, program *vm.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[path]; ok {
		c.lru.MoveToFront(el)
		el.Value.(*pathCacheEntry).program = program
		return
	}
	el := c.lru.PushFront(&pathCacheEntry{path: path, program: program})
	c.entries[path] = el
	if c.lru.Len() > c.capacity {
		oldest := c.lru.Back()
		if oldest != nil {
			c.lru.Remove(oldest)
			delete(c.entries, oldest.Value.(*pathCacheEntry).path)
		}
	}
}

// compileAndRun compiles (or reuses a cached compile of) path as an
// expr-lang expression and evaluates it against env.
func (c *pathCache) compileAndRun(path string, env map[string]interface{}) (interface{}, error) {
	program, ok := c.get(path)
	if !ok {
		p, err := expr.Compile(path, expr.Env(env))
		if err != nil {
			return nil, err
		}
		c.put(path, p)
		program = p
	}
	return expr.Run(program, env)
}
