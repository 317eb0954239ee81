// Package codetex extracts code listings from LaTeX presentation sources.
// It finds every lstlisting environment inside every frame, writes each
// listing to its own file, and can run any slide's listings through an
// external interpreter on demand.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, http/, exec/).
package codetex
