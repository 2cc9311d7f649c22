// Package server hosts live morphic documents over HTTP and WebSocket.
//
// Each WebSocket connection gets its own Session: a server-side document
// with the root component mounted into it. Client events arrive as
// msgpack messages, dispatch into the live tree, and the mutations the
// resulting update cycle records stream back as patch frames.
package server
