// Package reqctx provides centralized request context management.
//
// This package is the single source of truth for all request-scoped data:
// the caller's tenant context, request metadata, and tracing information.
// There is deliberately no process-global "current tenant". The caller
// context travels as an explicit value on every call so the engine stays
// safe under concurrent requests.
//
// # Context Keys
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
//
// # Usage
//
// Setting values (typically in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    RequestedAt: time.Now(),
//	})
//
//	ctx = reqctx.WithCaller(ctx, caller)
//
// Getting values (in handlers, services, etc.):
//
//	meta, ok := reqctx.RequestMetaFromContext(ctx)
//	caller, ok := reqctx.CallerFromContext(ctx)
//	if err := caller.RequireFacility(facilityID); err != nil { ... }
package reqctx
