// Copyright 2026 Portaldesk Ltd.
// SPDX-License-Identifier: AGPL-3.0

package audit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/portaldesk/portal-service/internal/logging"
	"github.com/portaldesk/portal-service/internal/monitoring"
	"github.com/portaldesk/portal-service/internal/tracing"
	"github.com/portaldesk/portal-service/internal/types"
)

const writeTimeout = 5 * time.Second

var _ RecorderInterface = (*Recorder)(nil)

// Recorder persists audit entries off the request path. Entries are handed
// to a buffered channel and written by a single background goroutine, so a
// slow or failing audit store can never block or fail the primary
// operation. Write failures surface only on the operational security log.
type Recorder struct {
	storage StorageInterface

	entries chan *types.AuditEntry
	done    chan struct{}
	dropped atomic.Uint64

	mu     sync.RWMutex
	closed bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewRecorder(storage StorageInterface, bufferSize int, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Recorder {
	if bufferSize <= 0 {
		bufferSize = 1024
	}

	r := &Recorder{
		storage: storage,
		entries: make(chan *types.AuditEntry, bufferSize),
		done:    make(chan struct{}),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	go r.drain()

	return r
}

func (r *Recorder) Record(e *types.AuditEntry) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		// Stragglers racing shutdown are dropped, never a panic.
		r.dropped.Add(1)
		r.logger.Warnf("audit recorder closed, dropped entry for %s %s", e.Entity, e.Action)
		return
	}

	select {
	case r.entries <- e:
	default:
		// Queue full. Dropping is preferable to blocking a request.
		r.dropped.Add(1)
		r.logger.Warnf("audit queue full, dropped entry for %s %s", e.Entity, e.Action)
	}
}

func (r *Recorder) RecordAction(identity types.Identity, action, entity, entityID string) {
	actorID := identity.UserID()
	e := &types.AuditEntry{
		Entity:      entity,
		EntityID:    entityID,
		Action:      action,
		ActorUserID: &actorID,
	}
	if tenantID, ok := identity.TenantScope(); ok {
		e.TenantID = &tenantID
	}

	r.Record(e)
}

func (r *Recorder) RecordDenied(identity *types.Identity, action, entity, entityID string, metadata map[string]string) {
	e := &types.AuditEntry{
		Entity:   entity,
		EntityID: entityID,
		Action:   "denied:" + action,
		Metadata: metadata,
	}

	subject := "anonymous"
	if identity != nil {
		actorID := identity.UserID()
		e.ActorUserID = &actorID
		if tenantID, ok := identity.TenantScope(); ok {
			e.TenantID = &tenantID
		}
		subject = actorID
	}

	r.logger.Security().AuthzFailure(subject, action)
	r.Record(e)
}

// Dropped reports how many entries were discarded because the queue was full.
func (r *Recorder) Dropped() uint64 {
	return r.dropped.Load()
}

// Close stops accepting entries and waits for the queue to flush. Safe to
// call more than once.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	close(r.entries)
	<-r.done
}

func (r *Recorder) drain() {
	defer close(r.done)

	for e := range r.entries {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := r.storage.CreateAuditEntry(ctx, e); err != nil {
			r.logger.Security().AuditWriteFailure(e.Entity, e.Action, err)
		}
		cancel()
	}
}
