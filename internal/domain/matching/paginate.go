package matching

// Pagination describes the slice of the ranked sequence a page covers.
type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// PagedResult is the engine's response contract.
type PagedResult struct {
	Data       []MatchResult `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// Paginate slices the ranked sequence into one page. A page past the end is
// not an error: it yields an empty data slice with the real total, so callers
// can tell "no matches" from "ran off the end".
func Paginate(ranked []MatchResult, page, limit int) PagedResult {
	total := len(ranked)
	offset := (page - 1) * limit

	data := []MatchResult{}
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		data = append(data, ranked[offset:end]...)
	}

	return PagedResult{
		Data: data,
		Pagination: Pagination{
			Page:    page,
			Limit:   limit,
			Total:   total,
			HasMore: offset+limit < total,
		},
	}
}
