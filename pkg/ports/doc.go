/*
Package ports defines the interfaces (contracts) between the inquest core
and the outside world, following Hexagonal Architecture principles.

The sequencer never touches a terminal directly. It consumes a LineReader
for ordinary replies and a KeystrokeStream for masked (password) input,
so adapters can back a session with a real TTY, a test script, or any
other transport.
*/
package ports
