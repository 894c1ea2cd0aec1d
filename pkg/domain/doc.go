/*
Package domain contains the core types shared by the transcoder and its adapters.

It is kept free of I/O and persistence so that every adapter (HTTP, MCP,
cache backends, the REPL) speaks the same vocabulary.

# Key Entities

  - Direction: which way a translation goes (english to morse, or back).
  - Translation: the result of one call, with its counters and cache status.
  - TranslateEvent / LifecycleHooks: observability callbacks fired by the Transcoder.
*/
package domain
