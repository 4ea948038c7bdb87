package search

import (
	"errors"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fscout/internal/domain"
	"fscout/internal/eventbus"
	"fscout/internal/pattern"
)

const eventTimeout = 2 * time.Second

func waitCompleted(t *testing.T, ch <-chan eventbus.SearchCompletedEvent) eventbus.SearchCompletedEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for search completion")
		return eventbus.SearchCompletedEvent{}
	}
}

func TestStartSearchDeliversOneResult(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/a/foo.txt", []byte("x"), 0644))
	require.NoError(t, util.WriteFile(fs, "/a/bar.txt", []byte("x"), 0644))

	bus := eventbus.New()
	completed := make(chan eventbus.SearchCompletedEvent, 4)
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			completed <- ev
		}
	})

	svc := NewService(bus, fs)
	req := domain.SearchRequest{RootPath: "/a", Pattern: "foo"}
	svc.StartSearch(req)
	svc.Wait()

	ev := waitCompleted(t, completed)
	assert.Equal(t, req, ev.Result.Request)
	assert.Equal(t, []string{"/a/foo.txt"}, ev.Result.Paths)

	// Exactly one terminal event per request.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, completed)
}

func TestStartSearchZeroMatchesStillCompletes(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/a/bar.txt", []byte("x"), 0644))

	bus := eventbus.New()
	completed := make(chan eventbus.SearchCompletedEvent, 1)
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			completed <- ev
		}
	})

	svc := NewService(bus, fs)
	svc.StartSearch(domain.SearchRequest{RootPath: "/a", Pattern: "zzz"})
	svc.Wait()

	ev := waitCompleted(t, completed)
	assert.NotNil(t, ev.Result.Paths)
	assert.Empty(t, ev.Result.Paths)
}

func TestStartSearchInvalidPatternFails(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/a/foo.txt", []byte("x"), 0644))

	bus := eventbus.New()
	failed := make(chan eventbus.SearchFailedEvent, 1)
	completed := make(chan eventbus.SearchCompletedEvent, 1)
	bus.Subscribe(eventbus.EventSearchFailed, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchFailedEvent); ok {
			failed <- ev
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			completed <- ev
		}
	})

	svc := NewService(bus, fs)
	req := domain.SearchRequest{RootPath: "/a", Pattern: "(unbalanced"}
	svc.StartSearch(req)
	svc.Wait()

	select {
	case ev := <-failed:
		assert.Equal(t, req, ev.Request)
		var ce *pattern.CompileError
		assert.True(t, errors.As(ev.Err, &ce))
	case <-time.After(eventTimeout):
		t.Fatal("timed out waiting for search failure")
	}

	// A malformed pattern never turns into an empty completion.
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, completed)
}

func TestConcurrentSearchesDoNotCrossContaminate(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/first/foo.txt", []byte("x"), 0644))
	require.NoError(t, util.WriteFile(fs, "/second/foo.md", []byte("x"), 0644))

	bus := eventbus.New()
	completed := make(chan eventbus.SearchCompletedEvent, 4)
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			completed <- ev
		}
	})

	svc := NewService(bus, fs)
	svc.StartSearch(domain.SearchRequest{RootPath: "/first", Pattern: "foo"})
	svc.StartSearch(domain.SearchRequest{RootPath: "/second", Pattern: "foo"})
	svc.Wait()

	byRoot := map[string][]string{}
	for i := 0; i < 2; i++ {
		ev := waitCompleted(t, completed)
		byRoot[ev.Result.Request.RootPath] = ev.Result.Paths
	}

	assert.Equal(t, []string{"/first/foo.txt"}, byRoot["/first"])
	assert.Equal(t, []string{"/second/foo.md"}, byRoot["/second"])
}

func TestServiceHandlesRequestedEvents(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/a/foo.txt", []byte("x"), 0644))

	bus := eventbus.New()
	completed := make(chan eventbus.SearchCompletedEvent, 1)
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SearchCompletedEvent); ok {
			completed <- ev
		}
	})

	NewService(bus, fs)
	bus.Publish(eventbus.SearchRequestedEvent{
		Request: domain.SearchRequest{RootPath: "/a", Pattern: "foo"},
	})

	ev := waitCompleted(t, completed)
	assert.Equal(t, []string{"/a/foo.txt"}, ev.Result.Paths)
}
