package domain

// SearchResult keeps the query next to the matches so an empty query can be told
// apart from a query without matches.
type SearchResult struct {
	Query    string     `json:"query"`
	Posts    []*Post    `json:"posts"`
	Profiles []*Profile `json:"profiles"`
}

func (r *SearchResult) Empty() bool {
	return len(r.Posts) == 0 && len(r.Profiles) == 0
}
