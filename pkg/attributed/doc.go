// Package attributed provides a fail-safe, strongly typed builder for
// attributed (styled) text.
//
// Instead of assembling a loosely typed map of style keys to arbitrary
// values, callers configure typed style properties through chained setters
// and materialize an immutable [Document] pairing the text with its
// resolved attribute set. The package is a typed carrier, not a validator:
// every setter accepts its value as given, no property combination is an
// error, and build never fails. Values outside the rendering layer's
// meaningful domain (for example a raw [graphics.LineStyle] code it does
// not define) pass through untouched and resolve downstream as an
// unspecified but non-crashing rendering.
//
// # Builders
//
// Two variants compose the same accumulation core:
//
//   - [TextBuilder] binds one string at construction; Build() takes no
//     argument and can stamp that string any number of times.
//   - [StyleBuilder] holds only style configuration; Build(text) applies
//     it to any string, so one configured style can be reused across many
//     different strings.
//
// Every setter overwrites the previous value of its property (last write
// wins) and returns the receiver for chaining. Copy produces an
// independent builder whose state is frozen at the copy point. Equal
// compares builders structurally, field for field.
//
// Run-level properties (colors, font, letter spacing, decorations, shadow,
// baseline offset) each resolve to one attribute over the full text range.
// Paragraph-level properties (alignment, line-break mode, line heights,
// line spacing) batch into a single [ParagraphStyle] descriptor, emitted
// only once at least one of them has been set.
//
// # Concurrency
//
// Builders are mutable value holders with no internal locking; sharing a
// live builder across goroutines without external synchronization is
// undefined behavior. Documents are immutable after construction and may
// be freely shared and read concurrently.
package attributed
