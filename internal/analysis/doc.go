// Package analysis computes summary statistics over a record table:
// income and per-category totals and averages, per-row net expenses and
// expense-to-income ratios, and the top spending category.
//
// Every function is a pure reduction over its inputs. Nothing is cached,
// so callers must recompute after changing the table.
package analysis
