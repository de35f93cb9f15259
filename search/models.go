package search

// Common Models

type Total struct {
	Value int `json:"value"`
}

type Result[T any] struct {
	Hits Hits[T] `json:"hits"`
}

type Hits[T any] struct {
	Total Total     `json:"total"`
	Hits  []Item[T] `json:"hits"`
}

type Item[T any] struct {
	Index  string        `json:"_index"`
	Id     string        `json:"_id"`
	Source T             `json:"_source"`
	Sort   []interface{} `json:"sort,omitempty"`
}

type BulkResponse struct {
	Errors bool `json:"errors"`
}
