// Package textnorm normalizes inline Markdown text for HTML output.
//
// It provides HTML escaping, backslash-escape removal, named and numeric
// character reference resolution, and code point validation and encoding.
// Every function is pure; the package-level tables are read-only, so all
// of it is safe for concurrent use.
package textnorm
