package vectara

// Source is a citable document derived from a search result.
type Source struct {
	Title string
	URL   string
}

// Result is the normalized outcome of one query: a generated summary plus
// the deduplicated sources it was drawn from. Sources may be empty.
type Result struct {
	Summary string
	Sources []Source
}

// Wire types for the v2 query endpoint.

type queryRequest struct {
	Query      string         `json:"query"`
	Search     searchSpec     `json:"search"`
	Generation generationSpec `json:"generation"`
}

type searchSpec struct {
	Corpora  []corpusSpec `json:"corpora"`
	Limit    int          `json:"limit"`
	Reranker rerankerSpec `json:"reranker"`
}

type corpusSpec struct {
	CorpusKey string `json:"corpus_key"`
}

type rerankerSpec struct {
	Type          string   `json:"type"`
	DiversityBias *float64 `json:"diversity_bias,omitempty"`
	Limit         int      `json:"limit,omitempty"`
	Cutoff        *float64 `json:"cutoff,omitempty"`
}

type generationSpec struct {
	PromptTemplate        string           `json:"prompt_template,omitempty"`
	MaxUsedSearchResults  int              `json:"max_used_search_results,omitempty"`
	MaxResponseCharacters int              `json:"max_response_characters,omitempty"`
	ResponseLanguage      string           `json:"response_language,omitempty"`
	ModelParameters       *modelParameters `json:"model_parameters,omitempty"`
	Citations             citationSpec     `json:"citations"`
}

type modelParameters struct {
	MaxTokens        int      `json:"max_tokens,omitempty"`
	Temperature      *float64 `json:"temperature,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
}

type citationSpec struct {
	Style string `json:"style"`
}

type queryResponse struct {
	Summary                 string            `json:"summary"`
	SearchResults           []searchResult    `json:"search_results"`
	FactualConsistencyScore float64           `json:"factual_consistency_score"`
	FieldErrors             map[string]string `json:"field_errors"`
	Messages                []string          `json:"messages"`
}

type searchResult struct {
	Text             string           `json:"text"`
	Score            float64          `json:"score"`
	DocumentMetadata documentMetadata `json:"document_metadata"`
}

type documentMetadata struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Excerpt string `json:"excerpt"`
}
