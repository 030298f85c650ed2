package config

import "errors"

// ErrEmptyAdjacencyEndpoint indicates an adjacency entry's from/to field
// was the empty string.
var ErrEmptyAdjacencyEndpoint = errors.New("config: adjacency endpoint is empty")
