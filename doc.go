// Package networth tracks a household's net worth from periodic snapshots.
//
// Users append dated snapshots of four asset categories (local and foreign,
// equity and cash) and capital contributions from a fixed set of people.
// Everything else is derived, purely and from scratch on every query: the
// fill-forward valuation timeline, trailing and calendar-year growth rates,
// and the dashboard reports.
//
// Ledgers persist as JSONL files, one record per line. The nwt command in
// this module is a thin shell over this package.
package networth
