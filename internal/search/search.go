package search

import (
	"sync"

	"github.com/go-git/go-billy/v5"

	"fscout/internal/domain"
	"fscout/internal/eventbus"
	"fscout/internal/pattern"
	"fscout/internal/scanner"
	"fscout/internal/walker"
)

// Service runs search tasks off the UI loop. Each StartSearch spawns an
// independent worker; tasks are never cancelled and each one delivers
// exactly one terminal event for its request. Several tasks may be in
// flight at once, and their results arrive in completion order.
type Service interface {
	StartSearch(req domain.SearchRequest)
	Wait()
}

// searchService is the concrete implementation
type searchService struct {
	bus     eventbus.EventBus
	scanner *scanner.Scanner
	wg      sync.WaitGroup
}

// NewService creates a search service scanning the given filesystem.
func NewService(bus eventbus.EventBus, fs billy.Filesystem) Service {
	s := &searchService{
		bus:     bus,
		scanner: scanner.New(walker.New(fs)),
	}

	// Subscribe to search requests
	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.StartSearch(event.Request)
		}
	})

	return s
}

// StartSearch spawns a worker for the request. The pattern is compiled up
// front so a malformed one is rejected before any traversal; compile
// failure is a distinct outcome from a valid search with zero matches.
func (s *searchService) StartSearch(req domain.SearchRequest) {
	m, err := pattern.Compile(req.Pattern)
	if err != nil {
		s.bus.Publish(eventbus.SearchFailedEvent{Request: req, Err: err})
		return
	}

	s.bus.Publish(eventbus.SearchStartedEvent{Request: req})

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		paths := s.scanner.Scan(req.RootPath, m)
		s.bus.Publish(eventbus.SearchCompletedEvent{
			Result: domain.SearchResult{Request: req, Paths: paths},
		})
	}()
}

// Wait blocks until all in-flight searches have delivered their results.
func (s *searchService) Wait() {
	s.wg.Wait()
}
