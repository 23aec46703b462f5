package geomtool

import "errors"

// Errors returned by View construction and stroke input.
var (
	// ErrNilTool is returned when a view is created without a model.
	ErrNilTool = errors.New("geomtool: nil tool")

	// ErrNilHost is returned when a view is created without a host surface.
	ErrNilHost = errors.New("geomtool: nil host")

	// ErrUnknownKind is returned for a tool kind outside the known set.
	ErrUnknownKind = errors.New("geomtool: unknown tool kind")

	// ErrDetached is returned for stroke input after finalization.
	ErrDetached = errors.New("geomtool: view detached from its tool")

	// ErrNoStroke is returned by ExtendStroke before BeginStroke.
	ErrNoStroke = errors.New("geomtool: no stroke in progress")
)
