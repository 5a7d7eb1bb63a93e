// Package rawtext converts Minecraft "raw text" between the wire encodings
// used by the Java and Bedrock editions: Java NBT, Java JSON, Java
// section-string, and Bedrock section-string.
//
// All conversions pivot through TextComponent, a tagged tree that models the
// shared logical structure of chat messages, sign text, book pages, and
// titles. There is no direct encoding-to-encoding shortcut; every From*
// parser builds a TextComponent and every To* emitter consumes one.
//
// The package is a pure function library: no I/O, no shared state, nothing
// to configure. Parsers treat their input as read-only from the caller's
// point of view (they work against an internal copy), and the returned tree
// is owned entirely by the caller.
package rawtext
