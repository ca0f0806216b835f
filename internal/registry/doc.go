// Package registry defines the catalog of crawler IP-range sources.
//
// A source is one upstream endpoint publishing the IP prefixes used by one
// bot identity of one provider (for example openai:gptbot). The catalog is
// an immutable value constructed once at startup and passed into the
// pipeline; there is no global registration.
package registry
