package models

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Role   string `json:"role,omitempty"`
	Result string `json:"result"`
}

// PageData is what the index template renders. Without a result only the
// empty form is shown.
type PageData struct {
	HasResult bool
	Result    string
	Role      string
}
