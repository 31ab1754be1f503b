// Package models defines the core domain models for CleverMart.
//
// # Persisted Models
//
// Two collections survive a restart:
//   - Product: one row of the inventory file
//   - Transaction: one row of the ledger, written once per checkout
//
// # In-Memory Models
//
// The following live only for the lifetime of the process:
//   - CartLine: a pending purchase line, keyed by product name
//   - SalesRecord: a per-line sale used by the profit report
//
// # Money
//
// Every monetary amount is a decimal.Decimal holding the cost basis or a
// derived value. Markup and profit are never stored on a Product; they are
// computed by the calculator package.
package models
