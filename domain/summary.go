package domain

// SummarySection is a titled group of summary bullet points.
// Points preserve the order the model produced them in; a section with
// zero points is never part of a final result.
type SummarySection struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// SummaryResult is the normalized output of summary extraction.
// TLDR may be empty on the way out, but the parser always backfills it
// from the first point when the model omitted an explicit TL;DR line.
type SummaryResult struct {
	TLDR     string
	Sections []SummarySection
}
