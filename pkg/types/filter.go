package types

// Filter — параметры списочных запросов.
// http://localhost:8080/requests?search=CNC&sort[created_at]=desc&filter[status]=NEW_REQUEST&limit=10&offset=0&withPagination=true
type Filter struct {
	Search         string                 `json:"search"`
	Sort           map[string]string      `json:"sort"`
	Filter         map[string]interface{} `json:"filter"`
	Limit          int                    `json:"limit"`
	Page           int                    `json:"page"`
	Offset         int                    `json:"offset"`
	WithPagination bool                   `json:"withPagination"`
}
