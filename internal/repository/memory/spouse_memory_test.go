package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"spouseshowcase/internal/repository"
	"spouseshowcase/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpouseMemory_CreateAndList(t *testing.T) {
	repo := NewSpouseMemory()
	ctx := context.Background()

	items, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	first, err := repo.Create(ctx, schema.SpouseInput{UserName: "Alice", SpouseName: "Dumbledore", ImageData: "d1"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, schema.SpouseInput{UserName: "Bob", SpouseName: "Ratau", ImageData: "d2"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	items, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, *first, items[0])
	assert.Equal(t, *second, items[1])
}

func TestSpouseMemory_ListReturnsCopy(t *testing.T) {
	repo := NewSpouseMemory()
	ctx := context.Background()
	_, err := repo.Create(ctx, schema.SpouseInput{UserName: "Alice", SpouseName: "X", ImageData: "d"})
	require.NoError(t, err)

	items, _ := repo.List(ctx)
	items[0].SpouseName = "changed"

	again, _ := repo.List(ctx)
	assert.Equal(t, "X", again[0].SpouseName)
}

func TestSpouseMemory_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	repo := NewSpouseMemory()
	ctx := context.Background()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := repo.Create(ctx, schema.SpouseInput{UserName: "same", SpouseName: fmt.Sprint(i), ImageData: "d"})
			if err == nil {
				ids <- s.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestSpouseMemory_CanceledContext(t *testing.T) {
	repo := NewSpouseMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, schema.SpouseInput{UserName: "Alice", SpouseName: "X", ImageData: "d"})
	assert.Equal(t, repository.MsgCreateFailed, err.Error())

	_, err = repo.List(ctx)
	assert.Equal(t, repository.MsgListFailed, err.Error())
}
