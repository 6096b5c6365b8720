//go:build unit

package mem

import (
	"fmt"
	"multimapdb/internal/database/storage/engine"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryEngine(t *testing.T) {
	e := NewInMemoryEngine(10)

	t.Run("Add and read back", func(t *testing.T) {
		require.NoError(t, e.Add("foo", "bar"))
		require.NoError(t, e.Add("foo", "baz"))

		assert.ElementsMatch(t, []string{"foo"}, e.Keys())

		members, err := e.Members("foo")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"bar", "baz"}, members)

		exists, err := e.MemberExists("foo", "bar")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.True(t, e.KeyExists("foo"))
	})

	t.Run("Remove cascades to key", func(t *testing.T) {
		require.NoError(t, e.Remove("foo", "bar"))

		err := e.Remove("foo", "bar")
		assert.ErrorIs(t, err, engine.ErrNotFound)
		assert.Equal(t, "member does not exist", err.Error())
		assert.ElementsMatch(t, []string{"foo"}, e.Keys())

		require.NoError(t, e.Remove("foo", "baz"))
		assert.Empty(t, e.Keys())
		assert.False(t, e.KeyExists("foo"))
	})

	t.Run("RemoveAll on absent key", func(t *testing.T) {
		err := e.RemoveAll("foo")
		assert.ErrorIs(t, err, engine.ErrNotFound)
		assert.Equal(t, "key does not exist", err.Error())
	})
}

func TestInMemoryEngine_Add(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		member  string
		wantErr error
		errMsg  string
	}{
		{name: "Valid pair", key: "key", member: "member"},
		{name: "Empty key", key: "", member: "member", wantErr: engine.ErrInvalidArgument, errMsg: "key must not be empty"},
		{name: "Whitespace key", key: "  \t", member: "member", wantErr: engine.ErrInvalidArgument, errMsg: "key must not be empty"},
		{name: "Empty member", key: "key", member: "", wantErr: engine.ErrInvalidArgument, errMsg: "member must not be empty"},
		{name: "Whitespace member", key: "key", member: " ", wantErr: engine.ErrInvalidArgument, errMsg: "member must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewInMemoryEngine(0)

			err := e.Add(tt.key, tt.member)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.True(t, e.KeyExists(tt.key))
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.errMsg, err.Error())
			assert.Zero(t, e.Count())
		})
	}
}

func TestInMemoryEngine_AddDuplicate(t *testing.T) {
	e := NewInMemoryEngine(0)
	require.NoError(t, e.Add("key", "member"))

	err := e.Add("key", "member")
	assert.ErrorIs(t, err, engine.ErrConflict)
	assert.Equal(t, "member already exists for key", err.Error())

	members, err := e.Members("key")
	require.NoError(t, err)
	assert.Equal(t, []string{"member"}, members)
}

func TestInMemoryEngine_CaseSensitive(t *testing.T) {
	e := NewInMemoryEngine(0)
	require.NoError(t, e.Add("Key", "Member"))
	require.NoError(t, e.Add("Key", "member"))
	require.NoError(t, e.Add("key", "Member"))

	assert.ElementsMatch(t, []string{"Key", "key"}, e.Keys())

	members, err := e.Members("Key")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Member", "member"}, members)
}

func TestInMemoryEngine_Remove(t *testing.T) {
	e := NewInMemoryEngine(0)
	require.NoError(t, e.Add("key", "a"))
	require.NoError(t, e.Add("key", "b"))

	t.Run("Absent key", func(t *testing.T) {
		err := e.Remove("missing", "a")
		assert.ErrorIs(t, err, engine.ErrNotFound)
		assert.Equal(t, "key does not exist", err.Error())
	})

	t.Run("Absent member", func(t *testing.T) {
		err := e.Remove("key", "c")
		assert.ErrorIs(t, err, engine.ErrNotFound)

		members, err := e.Members("key")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, members)
	})

	t.Run("Keeps key while members remain", func(t *testing.T) {
		require.NoError(t, e.Remove("key", "a"))
		assert.True(t, e.KeyExists("key"))

		exists, err := e.MemberExists("key", "a")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Last member removes key", func(t *testing.T) {
		require.NoError(t, e.Remove("key", "b"))
		assert.False(t, e.KeyExists("key"))

		_, err := e.Members("key")
		assert.ErrorIs(t, err, engine.ErrNotFound)
	})
}

func TestInMemoryEngine_RemoveAll(t *testing.T) {
	e := NewInMemoryEngine(0)
	require.NoError(t, e.Add("key", "a"))
	require.NoError(t, e.Add("key", "b"))
	require.NoError(t, e.Add("other", "a"))

	require.NoError(t, e.RemoveAll("key"))
	assert.False(t, e.KeyExists("key"))
	assert.ElementsMatch(t, []string{"other"}, e.Keys())

	assert.ErrorIs(t, e.RemoveAll("key"), engine.ErrNotFound)
	assert.ErrorIs(t, e.RemoveAll(""), engine.ErrNotFound)
}

func TestInMemoryEngine_Clear(t *testing.T) {
	e := NewInMemoryEngine(0)

	e.Clear()
	assert.Empty(t, e.Keys())

	require.NoError(t, e.Add("foo", "bar"))
	require.NoError(t, e.Add("bang", "baz"))

	e.Clear()
	assert.Empty(t, e.Keys())
	assert.Empty(t, e.Items())
	assert.Zero(t, e.Count())

	e.Clear()
	assert.Empty(t, e.Keys())

	require.NoError(t, e.Add("foo", "bar"))
	assert.Equal(t, 1, e.Count())
}

func TestInMemoryEngine_KeyExists(t *testing.T) {
	e := NewInMemoryEngine(0)
	require.NoError(t, e.Add("key", "member"))

	assert.True(t, e.KeyExists("key"))
	assert.False(t, e.KeyExists("KEY"))
	assert.False(t, e.KeyExists(""))
}

func TestInMemoryEngine_MemberExists(t *testing.T) {
	e := NewInMemoryEngine(0)
	require.NoError(t, e.Add("key", "member"))

	tests := []struct {
		name    string
		key     string
		member  string
		want    bool
		wantErr error
	}{
		{name: "Present member", key: "key", member: "member", want: true},
		{name: "Absent member", key: "key", member: "other", want: false},
		{name: "Absent key", key: "missing", member: "member", want: false},
		{name: "Empty key", key: "", member: "member", wantErr: engine.ErrInvalidArgument},
		{name: "Blank member", key: "key", member: "  ", wantErr: engine.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.MemberExists(tt.key, tt.member)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInMemoryEngine_AllMembersAndItems(t *testing.T) {
	e := NewInMemoryEngine(0)
	assert.Empty(t, e.AllMembers())
	assert.Empty(t, e.Items())

	require.NoError(t, e.Add("foo", "bar"))
	require.NoError(t, e.Add("bang", "bar"))
	require.NoError(t, e.Add("bang", "baz"))

	assert.ElementsMatch(t, []string{"bar", "bar", "baz"}, e.AllMembers())
	assert.ElementsMatch(t, []engine.Item{
		{Key: "foo", Member: "bar"},
		{Key: "bang", Member: "bar"},
		{Key: "bang", Member: "baz"},
	}, e.Items())
}

func TestInMemoryEngine_Union(t *testing.T) {
	e := NewInMemoryEngine(0)
	for _, m := range []string{"a", "b", "c"} {
		require.NoError(t, e.Add("x", m))
	}
	for _, m := range []string{"b", "c", "d"} {
		require.NoError(t, e.Add("y", m))
	}

	got, err := e.Union("x", "y")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, got)

	got, err = e.Union("x", "x")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, got)

	_, err = e.Union("x", "missing")
	assert.ErrorIs(t, err, engine.ErrNotFound)

	_, err = e.Union("missing", "y")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestInMemoryEngine_Except(t *testing.T) {
	e := NewInMemoryEngine(0)
	for _, m := range []string{"a", "b", "c"} {
		require.NoError(t, e.Add("x", m))
	}
	for _, m := range []string{"b", "c", "d"} {
		require.NoError(t, e.Add("y", m))
	}

	got, err := e.Except("x", "y")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "d"}, got)

	got, err = e.Except("x", "x")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = e.Except("x", "missing")
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestInMemoryEngine_SnapshotsAreIndependent(t *testing.T) {
	e := NewInMemoryEngine(0)
	require.NoError(t, e.Add("key", "a"))

	members, err := e.Members("key")
	require.NoError(t, err)
	members[0] = "changed"

	again, err := e.Members("key")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, again)
}

func TestConcurrency(t *testing.T) {
	e := NewInMemoryEngine(0)

	const goroutines = 50
	const iterations = 100

	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := fmt.Sprintf("key_%d", id%5)
			for j := 0; j < iterations; j++ {
				member := fmt.Sprintf("member_%d_%d", id, j)

				if err := e.Add(key, member); err != nil {
					errs <- fmt.Errorf("goroutine %d: add: %w", id, err)
					return
				}
				if err := e.Remove(key, member); err != nil {
					errs <- fmt.Errorf("goroutine %d: remove: %w", id, err)
					return
				}
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
	assert.Empty(t, e.Keys())
}
