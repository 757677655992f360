// Package command holds the service's business operations: each one is
// a struct carrying the narrow datasource interfaces it needs, with a
// single Execute method.
package command
