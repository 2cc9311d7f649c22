package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Invalid render output",
		Detail:   "A component's render function returned a value that is not a node, a node slice, a string, a primitive, or a slice of those.",
		DocURL:   "https://morphic.dev/docs/errors/E001",
	},
	// ============================================
	// Morph Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategoryMorph,
		Message:  "Container already being morphed",
		Detail:   "A reconciliation was requested on a container that is already being reconciled higher up the same call stack.",
		DocURL:   "https://morphic.dev/docs/errors/E020",
	},

	// ============================================
	// Protocol Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryProtocol,
		Message:  "Malformed patch frame",
		Detail:   "The patch frame could not be decoded. The client and server protocol versions may be out of sync.",
		DocURL:   "https://morphic.dev/docs/errors/E100",
	},
	"E101": {
		Category: CategoryProtocol,
		Message:  "Malformed event message",
		Detail:   "The incoming event message could not be decoded.",
		DocURL:   "https://morphic.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategoryProtocol,
		Message:  "Empty message",
		Detail:   "A zero-length message was submitted for decoding.",
		DocURL:   "https://morphic.dev/docs/errors/E102",
	},

	// ============================================
	// Config Errors (E120-E149)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The morphic.json file could not be read or parsed.",
		DocURL:   "https://morphic.dev/docs/errors/E120",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field holds a value outside its permitted range.",
		DocURL:   "https://morphic.dev/docs/errors/E122",
	},
	"E141": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No morphic.json was found in the working directory or any parent.",
		DocURL:   "https://morphic.dev/docs/errors/E141",
	},
	"E145": {
		Category: CategoryCLI,
		Message:  "Unknown project template",
		Detail:   "The requested scaffolding template is not registered.",
		DocURL:   "https://morphic.dev/docs/errors/E145",
	},

	// ============================================
	// Server Errors (E150-E169)
	// ============================================

	"E150": {
		Category: CategoryRuntime,
		Message:  "Unknown session",
		Detail:   "The session ID does not match any live session. The session may have expired.",
		DocURL:   "https://morphic.dev/docs/errors/E150",
	},
	"E151": {
		Category: CategoryRuntime,
		Message:  "Unknown event target",
		Detail:   "The event's target does not resolve to a node in the session's document.",
		DocURL:   "https://morphic.dev/docs/errors/E151",
	},
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	template, ok := registry[code]
	return template, ok
}
