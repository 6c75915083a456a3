package dto

type ReportDescriptor struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Filename      string `json:"filename"`
	Type          string `json:"type"`
	Description   string `json:"description"`
	GeneratedDate string `json:"generated_date"`
	FormattedDate string `json:"formatted_date"`
	DownloadURL   string `json:"download_url"`
	Status        string `json:"status"`
	IsRecent      bool   `json:"is_recent"`
}

type ReportsResponse struct {
	Reports []ReportDescriptor `json:"reports"`
}
