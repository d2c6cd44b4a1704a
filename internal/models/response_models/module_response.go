package response_models

type ModuleResponse struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       int    `json:"order"`
	// Content is the rendered HTML body; empty in listings.
	Content string `json:"content,omitempty"`
}
