package dto

// SummaryRowResponse is one category row of the yearly summary.
type SummaryRowResponse struct {
	Category string      `json:"category"`
	Months   [12]float64 `json:"months"`
	Total    float64     `json:"total"`
}

// SummaryResponse is a worker's yearly category×month table.
type SummaryResponse struct {
	NIP  string               `json:"nip"`
	Name string               `json:"name"`
	Year int                  `json:"year"`
	Rows []SummaryRowResponse `json:"rows"`
}
