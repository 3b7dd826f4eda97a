package repository

// SearchOptions holds the parameters for a similarity search.
type SearchOptions struct {
	QueryText   string // used by lexical matching only
	QueryVector []float32
	TopK        int
	MinScore    *float64 // nil means no score floor
}

// GenerateOptions holds the prompt and sampling parameters for one generation.
type GenerateOptions struct {
	Prompt       string
	MaxLength    int
	NumSequences int
	Temperature  float64
	TopK         int
	TopP         float64
}
