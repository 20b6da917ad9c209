// Package directive parses the path:value assignment strings that
// mkjson composes into a single JSON document.
package directive
