package entities

// TopicSummary describes one distinct topic together with the number of
// words that reference it. Topics are not stored on their own: they only
// exist while at least one word carries the label.
type TopicSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
