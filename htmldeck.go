// Package htmldeck converts the Pride Dealer Services HTML presentation
// into a branded PowerPoint deck. It extracts slide records from the
// presentation's fixed markup (slide containers, metric boxes, key-fact
// lists, financial tables, partnership sections) and renders one PPTX
// slide per record that carries enough content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, pptx/).
package htmldeck
