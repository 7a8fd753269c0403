// Package processor contains the core logic for translating English text.
// It orchestrates provider construction, single-text translation with
// session history, and batch file translation into CSV reports. This
// package serves as the main coordinator between all other components.
package processor
