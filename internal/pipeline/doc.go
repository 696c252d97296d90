// Package pipeline assembles the stages around the event transform.
//
// A conversion runs these stages in order:
//   - Markdown preprocessing (line ending normalization)
//   - Event production, option-driven rewriting and HTML serialization
//   - Optional sanitizing of the resulting fragment (bluemonday)
//
// Standalone output adds a second step that wraps the fragment in an HTML5
// page: relative Markdown links are pointed at their HTML counterparts, CSS
// and the code highlighting stylesheet are injected as <style> blocks, and a
// numbered table of contents is built from the rendered heading ids.
package pipeline
