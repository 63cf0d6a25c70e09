package menusync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"menu-sync/core/auditlog"
	"menu-sync/core/metrics"
	"menu-sync/core/tenant"

	"go.uber.org/zap"
)

// AuditAppender persists one record per attempted target. It must not fail the caller.
type AuditAppender interface {
	Append(ctx context.Context, rec auditlog.Record) (int64, bool)
}

// LastSyncRecorder stores the completion time of the latest run.
type LastSyncRecorder interface {
	TouchLastSync(ctx context.Context, at time.Time) error
}

// Deps are the collaborators of an Engine. Only Platform is required.
type Deps struct {
	Platform tenant.Platform
	Audit    AuditAppender
	LastSync LastSyncRecorder
	Metrics  *metrics.Metrics
	Hooks    *Hooks
	Logger   *zap.Logger
}

// Engine runs extract, apply and sync operations. Applies are serialized: at most one is in
// flight per engine.
type Engine struct {
	platform  tenant.Platform
	extractor *Extractor
	applier   *Applier
	audit     AuditAppender
	lastSync  LastSyncRecorder
	metrics   *metrics.Metrics
	hooks     *Hooks
	logger    *zap.Logger
	now       func() time.Time

	mu sync.Mutex
}

// NewEngine wires an engine.
func NewEngine(d Deps) *Engine {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		platform:  d.Platform,
		extractor: NewExtractor(log),
		applier:   NewApplier(d.Platform, d.Hooks, log),
		audit:     d.Audit,
		lastSync:  d.LastSync,
		metrics:   d.Metrics,
		hooks:     d.Hooks,
		logger:    log,
		now:       time.Now,
	}
}

// SyncMenu extracts req.MenuID once from the source tenant and applies it to every target in
// order. A failing target never stops the loop. Targets equal to the source, non-positive ids and
// repeated ids are skipped without an outcome. The returned error is set only when nothing was
// attempted: invalid input, a missing source tenant or menu, or a rejecting hook.
func (e *Engine) SyncMenu(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	if req.MenuID <= 0 {
		return nil, &ValidationError{Field: "menu_id", Reason: "must be a positive integer"}
	}
	if len(req.TargetTenantIDs) == 0 {
		return nil, &ValidationError{Field: "target_tenant_ids", Reason: "at least one target is required"}
	}
	if req.SourceTenantID <= 0 {
		return nil, &ValidationError{Field: "source_tenant_id", Reason: "must be a positive integer"}
	}
	operation := req.Operation
	if operation == "" {
		operation = auditlog.OperationSync
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.metrics.ObserveRun(operation)
	log := e.logger.With(
		zap.Int64("source_tenant_id", req.SourceTenantID),
		zap.Int64("menu_id", req.MenuID),
		zap.String("operation", operation),
	)

	source, err := e.enterSource(ctx, req.SourceTenantID)
	if err != nil {
		return nil, err
	}
	defer source.Leave()

	menu, err := e.extract(ctx, source, req.MenuID)
	if err != nil {
		log.Warn("Extraction failed, no target touched", zap.Error(err))
		return nil, err
	}

	resolver := NewResolver()
	result := newSyncResult()
	seen := make(map[int64]bool, len(req.TargetTenantIDs))

	for _, targetID := range req.TargetTenantIDs {
		if targetID <= 0 || targetID == req.SourceTenantID || seen[targetID] {
			continue
		}
		seen[targetID] = true

		outcome := e.applyAndRecord(ctx, menu, targetID, req.Options, resolver, source, req.ActorID, operation)
		if outcome.Succeeded {
			result.Success[targetID] = outcome
		} else {
			result.Failed[targetID] = outcome.ErrorMessage
		}
	}

	if e.lastSync != nil {
		if err := e.lastSync.TouchLastSync(ctx, e.now()); err != nil {
			log.Error("Failed to record last sync time", zap.Error(err))
		}
	}

	log.Info("Sync run finished",
		zap.Int("succeeded", len(result.Success)),
		zap.Int("failed", len(result.Failed)),
		zap.Int("reference_lookups", resolver.Lookups()),
	)
	return result, nil
}

// ExtractMenu returns the portable form of menuID on sourceTenantID, after the extract hooks.
func (e *Engine) ExtractMenu(ctx context.Context, sourceTenantID, menuID int64) (*PortableMenu, error) {
	if menuID <= 0 {
		return nil, &ValidationError{Field: "menu_id", Reason: "must be a positive integer"}
	}
	if sourceTenantID <= 0 {
		return nil, &ValidationError{Field: "source_tenant_id", Reason: "must be a positive integer"}
	}
	source, err := e.enterSource(ctx, sourceTenantID)
	if err != nil {
		return nil, err
	}
	defer source.Leave()
	return e.extract(ctx, source, menuID)
}

// ApplyMenu applies an already extracted menu to one target and audits the attempt. The menu is
// cleaned the way extraction cleans it before anything is written. References
// are resolved against the menu's source tenant when it still exists. The target may be the
// source itself, which restores the menu from the snapshot.
func (e *Engine) ApplyMenu(ctx context.Context, req ApplyRequest) (SyncOutcome, error) {
	if req.Menu == nil {
		return SyncOutcome{}, &ValidationError{Field: "menu", Reason: "is required"}
	}
	// Audit records need both ids, so a menu without them would sync unrecorded.
	if req.Menu.SourceTenantID <= 0 {
		return SyncOutcome{}, &ValidationError{Field: "menu.source_tenant_id", Reason: "must be a positive integer"}
	}
	if req.Menu.MenuID <= 0 {
		return SyncOutcome{}, &ValidationError{Field: "menu.menu_id", Reason: "must be a positive integer"}
	}
	menu := cleanMenu(req.Menu)
	if menu.Slug == "" {
		return SyncOutcome{}, &ValidationError{Field: "menu.slug", Reason: "is required"}
	}
	if req.TargetTenantID <= 0 {
		return SyncOutcome{}, &ValidationError{Field: "target_tenant_id", Reason: "must be a positive integer"}
	}
	operation := req.Operation
	if operation == "" {
		operation = auditlog.OperationApply
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.metrics.ObserveRun(operation)

	var source tenant.Scope
	if scope, err := e.platform.Enter(ctx, menu.SourceTenantID); err == nil {
		source = scope
		defer scope.Leave()
	} else {
		e.logger.Warn("Source tenant unavailable, references will degrade",
			zap.Int64("source_tenant_id", menu.SourceTenantID),
			zap.Error(err),
		)
	}

	return e.applyAndRecord(ctx, menu, req.TargetTenantID, req.Options, NewResolver(), source, req.ActorID, operation), nil
}

func (e *Engine) enterSource(ctx context.Context, id int64) (tenant.Scope, error) {
	scope, err := e.platform.Enter(ctx, id)
	if err != nil {
		if errors.Is(err, tenant.ErrTenantNotFound) {
			return nil, &NotFoundError{ID: id, Err: ErrSourceNotFound}
		}
		return nil, fmt.Errorf("failed to enter source tenant %d: %w", id, err)
	}
	return scope, nil
}

func (e *Engine) extract(ctx context.Context, source tenant.Scope, menuID int64) (*PortableMenu, error) {
	menu, err := e.extractor.Extract(ctx, source, menuID)
	if err != nil {
		return nil, err
	}
	if err := e.hooks.runAfterExtract(ctx, menu); err != nil {
		return nil, fmt.Errorf("extract hook rejected menu %d: %w", menuID, err)
	}
	return menu, nil
}

// applyAndRecord applies menu to one target, then writes the audit record and metrics.
func (e *Engine) applyAndRecord(ctx context.Context, menu *PortableMenu, targetID int64, opts Options, resolver *Resolver, source tenant.Scope, actorID int64, operation string) SyncOutcome {
	started := e.now()
	outcome := e.applier.Apply(ctx, menu, targetID, opts, resolver, source)
	e.metrics.ObserveApply(operation, string(opts.ConflictStrategy), outcome.Succeeded,
		outcome.ItemsSynced, outcome.ItemsFailed, outcome.DegradedReferences, e.now().Sub(started))

	if e.audit == nil {
		return outcome
	}
	rec := auditlog.Record{
		Timestamp:      e.now(),
		SourceTenantID: menu.SourceTenantID,
		TargetTenantID: targetID,
		MenuID:         menu.MenuID,
		MenuName:       menu.Name,
		Operation:      operation,
		ItemsSynced:    outcome.ItemsSynced,
		Conflicts:      conflictsPayload(opts, outcome),
		ActorID:        actorID,
	}
	if outcome.Succeeded {
		rec.Status = auditlog.StatusSuccess
		rec.Message = fmt.Sprintf("Synced %d items", outcome.ItemsSynced)
	} else {
		rec.Status = auditlog.StatusError
		rec.Message = outcome.ErrorMessage
	}
	if _, ok := e.audit.Append(ctx, rec); !ok {
		e.metrics.ObserveAuditFailure()
		e.logger.Error("Audit record was not written",
			zap.Int64("target_tenant_id", targetID),
			zap.Int64("menu_id", menu.MenuID),
		)
	}
	return outcome
}

// conflictsPayload is the structured detail stored with an audit record, nil when there is
// nothing to report.
func conflictsPayload(opts Options, outcome SyncOutcome) map[string]any {
	payload := make(map[string]any)
	if outcome.DegradedReferences > 0 {
		payload["degraded_references"] = outcome.DegradedReferences
	}
	if outcome.ItemsFailed > 0 {
		payload["items_failed"] = outcome.ItemsFailed
	}
	if outcome.Plan != nil {
		payload["merge"] = map[string]any{
			"create": outcome.Plan.Create,
			"update": outcome.Plan.Update,
			"keep":   outcome.Plan.Keep,
		}
	}
	if outcome.ConflictAborted {
		payload["strategy"] = string(opts.ConflictStrategy)
		payload["abort"] = outcome.ErrorMessage
	}
	if len(payload) == 0 {
		return nil
	}
	return payload
}
