/*
Package server implements msgpack IPC for prefix completion services.

The server provides a minimal interface for typeahead lookups using msgpack
serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports completion requests,
control ops (reload, stats, ping) and nothing else. Messages are processed
synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout.
Each message contains an ID field and other fields based on the operation type.

Completion requests use mainly this structure:

	{"id": "req_001", "p": "ame", "l": 24}

The server responds with suggestions in discovery order:

	{"id": "req_001", "s": [{"w": "amenity", "r": 1}, {"w": "america", "r": 2}], "c": 2, "t": 145}

Control requests carry an action instead of a prefix:

	{"id": "ctl_001", "action": "reload"}
	{"id": "ctl_002", "action": "stats"}

Response structures include status information and error details when an op
fails.

# Message Types

Request carries both completion and control fields; a non-empty action marks
a control message. CompletionResponse holds the suggestion array with text and
rank per entry, plus timing data. StatusResponse answers control requests and
CompletionError reports validation failures.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON and
parses faster, which matters at one request per keystroke.
*/
package server

// Request - incoming message; Action marks control requests
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"` // "reload", "stats", "ping"
	Prefix string `msgpack:"p,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word    string `msgpack:"w"`
	Display string `msgpack:"d,omitempty"`
	Rank    uint16 `msgpack:"r"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// StatusResponse - control operation response
type StatusResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Error  string         `msgpack:"error,omitempty"`
	Stats  map[string]int `msgpack:"stats,omitempty"`
}

// CompletionError holds basic error information for completion requests
type CompletionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
