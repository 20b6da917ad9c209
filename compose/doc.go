// Package compose merges path assignment directives into a single
// document tree.
package compose
