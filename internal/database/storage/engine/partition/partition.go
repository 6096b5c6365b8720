package partition

import (
	"hash/fnv"
	"multimapdb/internal/database/storage/engine"
	"sync"
)

// PartitionedEngine spreads keys over several engines by key hash.
// Single-key operations share mu so different partitions proceed in parallel;
// operations touching more than one partition hold mu exclusively.
type PartitionedEngine struct {
	mu         sync.RWMutex
	partitions []engine.Engine
}

func NewPartitionedEngine(partitions []engine.Engine) *PartitionedEngine {
	return &PartitionedEngine{
		partitions: partitions,
	}
}

func (e *PartitionedEngine) Keys() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var keys []string
	for _, p := range e.partitions {
		keys = append(keys, p.Keys()...)
	}
	return keys
}

func (e *PartitionedEngine) Members(key string) ([]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.partition(key).Members(key)
}

func (e *PartitionedEngine) Add(key, member string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.partition(key).Add(key, member)
}

func (e *PartitionedEngine) Remove(key, member string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.partition(key).Remove(key, member)
}

func (e *PartitionedEngine) RemoveAll(key string) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.partition(key).RemoveAll(key)
}

func (e *PartitionedEngine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, p := range e.partitions {
		p.Clear()
	}
}

func (e *PartitionedEngine) KeyExists(key string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.partition(key).KeyExists(key)
}

func (e *PartitionedEngine) MemberExists(key, member string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.partition(key).MemberExists(key, member)
}

func (e *PartitionedEngine) AllMembers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	var members []string
	for _, p := range e.partitions {
		members = append(members, p.AllMembers()...)
	}
	return members
}

func (e *PartitionedEngine) Items() []engine.Item {
	e.mu.Lock()
	defer e.mu.Unlock()

	var items []engine.Item
	for _, p := range e.partitions {
		items = append(items, p.Items()...)
	}
	return items
}

func (e *PartitionedEngine) Union(keyA, keyB string) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, b, err := e.pair(keyA, keyB)
	if err != nil {
		return nil, err
	}
	return engine.Union(a, b), nil
}

func (e *PartitionedEngine) Except(keyA, keyB string) ([]string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, b, err := e.pair(keyA, keyB)
	if err != nil {
		return nil, err
	}
	return engine.SymmetricDifference(a, b), nil
}

func (e *PartitionedEngine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	count := 0
	for _, p := range e.partitions {
		count += p.Count()
	}
	return count
}

func (e *PartitionedEngine) pair(keyA, keyB string) ([]string, []string, error) {
	a, err := e.partition(keyA).Members(keyA)
	if err != nil {
		return nil, nil, err
	}
	b, err := e.partition(keyB).Members(keyB)
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func (e *PartitionedEngine) partition(key string) engine.Engine {
	return e.partitions[e.getPartitionId(key)]
}

func (e *PartitionedEngine) getPartitionId(key string) int {
	hasher := fnv.New32a()
	_, err := hasher.Write([]byte(key))
	if err != nil {
		panic(err)
	}

	return int(hasher.Sum32() % uint32(len(e.partitions)))
}
