package manifest

// SummaryManifest is the overview written after a batch run: totals, the
// aggregate top keywords, and one entry per document.
type SummaryManifest struct {
	GeneratedAt       string            `json:"generated_at" yaml:"generated_at"`
	TotalDocuments    int               `json:"total_documents" yaml:"total_documents"`
	Successful        int               `json:"successful" yaml:"successful"`
	Failed            int               `json:"failed" yaml:"failed"`
	TotalTokens       int               `json:"total_tokens" yaml:"total_tokens"`
	Vocabulary        int               `json:"vocabulary" yaml:"vocabulary"`
	AggregateKeywords []string          `json:"aggregate_keywords" yaml:"aggregate_keywords"`
	Results           []DocumentSummary `json:"results" yaml:"results"`
}

// DocumentSummary describes the outcome for a single document.
type DocumentSummary struct {
	Document     string   `json:"document" yaml:"document"`
	Status       string   `json:"status" yaml:"status"` // "success" or "error"
	ReportPath   string   `json:"report_path,omitempty" yaml:"report_path,omitempty"`
	RunID        string   `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	ErrorType    string   `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	SizeBytes    int64    `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	Language     string   `json:"language,omitempty" yaml:"language,omitempty"`
	TotalTokens  int      `json:"total_tokens,omitempty" yaml:"total_tokens,omitempty"`
	Vocabulary   int      `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty"`
	TopKeywords  []string `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}
