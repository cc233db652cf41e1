// Package errors provides structured, coded errors for the creator service.
//
// Repositories, the catalog loader, and the orchestrator return *Error values
// with a Code that callers branch on via the Is* helpers. The derivation
// engine itself never returns these for computation failures: stat derivation
// is total and degrades to documented defaults instead of erroring.
package errors
