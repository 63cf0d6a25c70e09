// Package menus exposes menu synchronization over HTTP.
//
// The Service fills gaps in requests from the persisted settings (source tenant, targets, conflict
// strategy) and refuses writes while synchronization is disabled. Snapshots of portable menus are
// kept in object storage under <prefix>/<slug>/<unix>.<json|yaml> and can be applied back to any
// tenant, including the one they were taken from.
//
// # HTTP Endpoints
//
//   - POST /menusync/sync : Sync one menu.
//   - POST /menusync/sync-all : Sync every menu of the source tenant.
//   - POST /menusync/events/menu-updated : Auto sync trigger.
//   - GET /menusync/menus : List menus.
//   - GET /menusync/menus/:id/extract : Portable form of a menu.
//   - POST /menusync/apply : Apply a portable menu to one target.
//   - GET /menusync/snapshots : List snapshots.
//   - POST /menusync/snapshots : Export a snapshot.
//   - POST /menusync/snapshots/import : Apply a snapshot to targets.
package menus
