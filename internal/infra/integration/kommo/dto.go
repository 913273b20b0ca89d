package kommo

type CreateLeadInput struct {
	Name               string
	Email              string
	Phone              string // opcional
	Country            string
	ConsultationMethod string
	Message            string
}

type ContactResponse struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type embeddedContacts struct {
	Embedded struct {
		Contacts []ContactResponse `json:"contacts"`
	} `json:"_embedded"`
}

type embeddedLeads struct {
	Embedded struct {
		Leads []struct {
			ID int `json:"id"`
		} `json:"leads"`
	} `json:"_embedded"`
}

type embeddedNotes struct {
	Embedded struct {
		Notes []struct {
			ID int `json:"id"`
		} `json:"notes"`
	} `json:"_embedded"`
}
