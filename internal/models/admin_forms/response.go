package models

const (
	BannerSuccess = "success"
	BannerError   = "error"
)

// Banner is the status line the admin panel shows after a submission.
type Banner struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

type SubmitResponse struct {
	Message Banner      `json:"message"`
	ID      string      `json:"id,omitempty"`
	Record  interface{} `json:"record,omitempty"`
	Missing []string    `json:"missing,omitempty"`
}
