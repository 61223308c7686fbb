package engine

// InlineLayout (spec §4.7) is intentionally minimal: this module treats
// a single run of inline/inline-block content as shrink-to-fit text
// measured by a Measurer, never performing multi-element line-breaking
// across siblings (full inline formatting context layout is explicitly
// out of scope — see SPEC_FULL.md's Non-goals). An inline-block or
// inline container with element children is laid out exactly like a
// block container (layoutBlockContainer): with Width Auto it fills a
// definite available width, and shrinks to its content's width only
// when the available width is not definite. Dispatch for both cases lives in
// computeLayout/layoutBlockContainer; this file exists to name the
// concept SPEC_FULL.md calls out as its own component.
