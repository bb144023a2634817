// Package sitedoc provides a queryable view over a statically hosted
// documentation site. It discovers which pages exist, fetches and normalizes
// their text, and answers keyword and intent based search queries with
// ranked, excerpted results.
//
// This package contains domain types, interfaces and the pure parts of the
// pipeline (path mapping, intent parsing, ranking) following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, lru/, mcp/).
package sitedoc
