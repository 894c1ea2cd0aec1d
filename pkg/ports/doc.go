/*
Package ports defines the driven ports (interfaces) of the transcoder.

These interfaces decouple the transcoding core from external implementations,
allowing the same Transcoder to run with no cache, an in-process cache or a
shared Redis cache, and letting every adapter depend on a narrow Translator.

# Key Interfaces

  - Translator: what the HTTP, MCP and REPL adapters need from the core.
  - TranslationCache: stores finished translations keyed by domain.CacheKey.
*/
package ports
