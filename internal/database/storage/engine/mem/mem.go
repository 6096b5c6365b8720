package mem

import (
	"multimapdb/internal/database/storage/engine"
	"sync"
)

type memberSet map[string]struct{}

// InMemoryEngine keeps every key with its member set in a single map guarded by one lock.
type InMemoryEngine struct {
	mu      sync.RWMutex
	storage map[string]memberSet
}

func NewInMemoryEngine(initialSize int) *InMemoryEngine {
	return &InMemoryEngine{
		storage: make(map[string]memberSet, initialSize),
	}
}

func (e *InMemoryEngine) Keys() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	keys := make([]string, 0, len(e.storage))
	for key := range e.storage {
		keys = append(keys, key)
	}
	return keys
}

func (e *InMemoryEngine) Members(key string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.members(key)
}

func (e *InMemoryEngine) Add(key, member string) error {
	if err := engine.ValidateArgument("key", key); err != nil {
		return err
	}
	if err := engine.ValidateArgument("member", member); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	set, exists := e.storage[key]
	if !exists {
		e.storage[key] = memberSet{member: {}}
		return nil
	}

	if _, exists := set[member]; exists {
		return engine.ErrMemberExists
	}
	set[member] = struct{}{}
	return nil
}

func (e *InMemoryEngine) Remove(key, member string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	set, exists := e.storage[key]
	if !exists {
		return engine.ErrKeyNotFound
	}
	if _, exists := set[member]; !exists {
		return engine.ErrMemberNotFound
	}

	delete(set, member)
	if len(set) == 0 {
		delete(e.storage, key)
	}
	return nil
}

func (e *InMemoryEngine) RemoveAll(key string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.storage[key]; !exists {
		return engine.ErrKeyNotFound
	}
	delete(e.storage, key)
	return nil
}

// Clear empties the existing map in place.
func (e *InMemoryEngine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	clear(e.storage)
}

func (e *InMemoryEngine) KeyExists(key string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	_, exists := e.storage[key]
	return exists
}

func (e *InMemoryEngine) MemberExists(key, member string) (bool, error) {
	if err := engine.ValidateArgument("key", key); err != nil {
		return false, err
	}
	if err := engine.ValidateArgument("member", member); err != nil {
		return false, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	_, exists := e.storage[key][member]
	return exists, nil
}

func (e *InMemoryEngine) AllMembers() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	members := make([]string, 0, len(e.storage))
	for _, set := range e.storage {
		for member := range set {
			members = append(members, member)
		}
	}
	return members
}

func (e *InMemoryEngine) Items() []engine.Item {
	e.mu.RLock()
	defer e.mu.RUnlock()

	items := make([]engine.Item, 0, len(e.storage))
	for key, set := range e.storage {
		for member := range set {
			items = append(items, engine.Item{Key: key, Member: member})
		}
	}
	return items
}

func (e *InMemoryEngine) Union(keyA, keyB string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, b, err := e.pair(keyA, keyB)
	if err != nil {
		return nil, err
	}
	return engine.Union(a, b), nil
}

func (e *InMemoryEngine) Except(keyA, keyB string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	a, b, err := e.pair(keyA, keyB)
	if err != nil {
		return nil, err
	}
	return engine.SymmetricDifference(a, b), nil
}

func (e *InMemoryEngine) Count() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.storage)
}

func (e *InMemoryEngine) pair(keyA, keyB string) ([]string, []string, error) {
	a, err := e.members(keyA)
	if err != nil {
		return nil, nil, err
	}
	b, err := e.members(keyB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// members must be called with mu held.
func (e *InMemoryEngine) members(key string) ([]string, error) {
	set, exists := e.storage[key]
	if !exists {
		return nil, engine.ErrKeyNotFound
	}

	members := make([]string, 0, len(set))
	for member := range set {
		members = append(members, member)
	}
	return members, nil
}
