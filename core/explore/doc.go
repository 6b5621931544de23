// Package explore exposes the high-level exploration operations: resolving
// locations from queries or coordinates, listing nearby places, fetching
// live news, and extracting travel routes from text or web pages.
//
// The package sits on top of the retry, extraction, and repair layers and
// adds the last line of defence: prompts that ask for a specific JSON shape,
// schemas that hint the model toward it, and coercion that accepts whatever
// actually comes back. Explorer methods never return errors; every failure
// becomes a typed fallback the caller can render as-is.
package explore
