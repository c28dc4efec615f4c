// Package typeset rewrites a parsed markdown document tree into its
// publication-ready form.
//
// The engine applies an ordered chain of syntactic rewrites to every
// paragraph, table, and table cell of the tree: wiki-style anchor links,
// inline footnotes with document-wide numbering, numbered alternating-float
// figures, numbered table captions, and the Chinese/Latin mixed-script
// typography rules used across the blog (script spacing, full-width
// punctuation collapse, corner-quote spans, alignment directives).
//
// Parse converts raw markdown into the tree, Transform rewrites it in place,
// and Render serializes it back to markdown with embedded HTML fragments.
// Process chains all three. Each Transform invocation owns its own counters
// and footnote state, so documents can be processed concurrently.
package typeset
