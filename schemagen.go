// Package schemagen generates schema.org JSON-LD markup for web pages.
// It turns page URLs into BreadcrumbList trails and, given page metadata,
// into Article objects, and serializes both as script blocks ready to be
// pasted into a page head.
//
// This package contains domain types, interfaces and the pure generation
// core following Ben Johnson's Standard Package Layout. Implementations
// that touch the network, disk or a database live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package schemagen
