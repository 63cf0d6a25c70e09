// Package gormstore implements the tenant platform on top of gorm.
//
// Every tenant lives in the same schema; rows carry a tenant_id column and a scope filters on it.
// The package also owns the seed helpers used by migrations and tests.
package gormstore
