// Package tenant defines the boundary between the sync engine and the multi-tenant content
// platform it runs against.
//
// The platform keeps one menu forest, one set of content entries and taxonomy terms, and one
// set of display slot bindings per tenant. The engine never holds a process-wide "current
// tenant": it asks the Platform for a Scope on a tenant and performs every read and write
// through that value, leaving the scope when done.
//
// core/tenant/gormstore is the relational implementation used by the service.
package tenant
