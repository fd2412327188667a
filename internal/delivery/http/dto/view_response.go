package dto

type ViewLinkResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Href  string `json:"href"`
}
