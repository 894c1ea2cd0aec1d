/*
Package session keeps a pair of synchronized buffers for live translation.

A Session holds the english text and its Morse stream. Editing one side
recomputes the other, but only when the edited side actually changed, so a
front end can push its whole buffer on every keystroke without redundant
work or feedback loops between the two panes.

The Manager tracks live sessions (for example one per WebSocket) by ID.
*/
package session
