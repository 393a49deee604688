// Package parsework runs subtitle parsing off the caller's goroutine so
// large files never stall playback-facing request handling. Requests and
// responses are matched solely by correlation id, never by arrival order.
package parsework

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/ofirgaash1/engsub/internal/domain"
	"github.com/ofirgaash1/engsub/internal/subtitle"
)

const cancelledMessage = "parsing cancelled"

// ErrCancelled is returned for requests still pending when the pool shuts
// down, and for requests cancelled through their context.
var ErrCancelled = errors.New(cancelledMessage)

// Request is one parse job keyed by a correlation id.
type Request struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Response carries the parsed, tokenized cues for one request. Parse
// failures arrive in Error instead of crossing the boundary as panics.
type Response struct {
	ID    string       `json:"id"`
	Cues  []domain.Cue `json:"cues"`
	Error string       `json:"error,omitempty"`
}

// Pool is a fixed set of parser goroutines behind a bounded request queue.
// A Pool with zero workers degrades to synchronous inline parsing: the same
// output contract, just without the non-blocking behavior.
type Pool struct {
	log     *slog.Logger
	queue   chan Request
	done    chan struct{}
	workers int

	mu      sync.Mutex
	pending map[string]chan Response
	closed  bool

	wg sync.WaitGroup

	// Replaced in tests to control worker timing.
	parseFn func(text string) []domain.Cue
}

// NewPool starts workers goroutines consuming a queue of queueSize slots.
func NewPool(logger *slog.Logger, workers, queueSize int) *Pool {
	if queueSize < 1 {
		queueSize = 1
	}
	p := &Pool{
		log:     logger.With("component", "parsework"),
		queue:   make(chan Request, queueSize),
		done:    make(chan struct{}),
		workers: workers,
		pending: make(map[string]chan Response),
		parseFn: parseAndTokenize,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

// Parse submits text and blocks until the matching response arrives, the
// context is done, or the pool shuts down. The request either fully succeeds
// with a cue list or fully fails; there is no partial delivery.
func (p *Pool) Parse(ctx context.Context, text string) ([]domain.Cue, error) {
	if p.workers == 0 {
		resp := p.execute(Request{ID: uuid.NewString(), Text: text})
		return responseCues(resp)
	}

	req := Request{ID: uuid.NewString(), Text: text}
	ch := make(chan Response, 1)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrCancelled
	}
	p.pending[req.ID] = ch
	p.mu.Unlock()

	select {
	case p.queue <- req:
	case <-p.done:
		p.cancel(req.ID)
		return nil, ErrCancelled
	case <-ctx.Done():
		p.cancel(req.ID)
		return nil, ctx.Err()
	}

	select {
	case resp := <-ch:
		return responseCues(resp)
	case <-ctx.Done():
		// Clearing the map entry is the cancellation: the eventual worker
		// response finds no pending id and is discarded.
		p.cancel(req.ID)
		return nil, ctx.Err()
	}
}

// Close stops the workers and rejects every still-pending request so no
// caller is left hanging. The queue channel itself is never closed: a caller
// blocked on the queue send is released through the done channel instead.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	for id, ch := range p.pending {
		ch <- Response{ID: id, Error: cancelledMessage}
		delete(p.pending, id)
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case req := <-p.queue:
			p.deliver(p.execute(req))
		case <-p.done:
			return
		}
	}
}

// execute runs the parse pipeline for one request, converting panics into
// the response's error field so they never become unhandled worker crashes.
func (p *Pool) execute(req Request) (resp Response) {
	resp.ID = req.ID
	defer func() {
		if r := recover(); r != nil {
			resp.Cues = nil
			resp.Error = fmt.Sprintf("parse failed: %v", r)
		}
	}()
	resp.Cues = p.parseFn(req.Text)
	return resp
}

// deliver hands a response to its waiting caller. Responses whose id is no
// longer pending (cancelled or superseded requests) are dropped.
func (p *Pool) deliver(resp Response) {
	p.mu.Lock()
	ch, ok := p.pending[resp.ID]
	if ok {
		delete(p.pending, resp.ID)
	}
	p.mu.Unlock()

	if !ok {
		p.log.Debug("dropping stale parse response", "id", resp.ID)
		return
	}
	ch <- resp
}

func (p *Pool) cancel(id string) {
	p.mu.Lock()
	delete(p.pending, id)
	p.mu.Unlock()
}

func responseCues(resp Response) ([]domain.Cue, error) {
	switch resp.Error {
	case "":
		return resp.Cues, nil
	case cancelledMessage:
		return nil, ErrCancelled
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrParseFailed, resp.Error)
	}
}

// parseAndTokenize is the worker-side pipeline: cues come back with Tokens
// already populated.
func parseAndTokenize(text string) []domain.Cue {
	cues := subtitle.ParseSRT(text)
	for i := range cues {
		cues[i].Tokens = subtitle.Tokenize(cues[i].RawText)
	}
	return cues
}
