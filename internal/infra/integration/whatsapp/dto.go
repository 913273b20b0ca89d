package whatsapp

type SendTemplateInput struct {
	PhoneNumber  string   // Ex: "16463915932" (sem +)
	TemplateName string   // Ex: "new_lead_alert"
	Parameters   []string // Ex: []string{"John Smith", "john@example.com"}
}

type SendMessageResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Contacts []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Error *ErrorResponse `json:"error"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}
