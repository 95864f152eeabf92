// Package persist stores the durable workspace snapshot under a single
// versioned document, tolerating absent files and schema drift.
package persist
