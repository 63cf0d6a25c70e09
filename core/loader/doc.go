// Package loader registers the HTTP features of the service and mounts them in order.
//
// A feature bundles a service with its fiber routes. The start command registers menus, logs,
// settings and integrity; features that report IsEnabled false (for example integrity with
// neither a bucket nor a database) are skipped, and the first Load error aborts startup.
package loader
