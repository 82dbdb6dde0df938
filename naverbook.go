// Package naverbook provides a metadata lookup client for the Naver Book
// catalog. Given a title, authors, or identifiers (ISBN, catalog id) it
// searches the catalog, parses the resulting HTML, and produces structured
// book metadata records plus an optional cover image URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/); the
// search-and-fetch orchestration lives in lookup/.
package naverbook
