package mail

type LeadNotificationData struct {
	LeadID             string
	FullName           string
	Email              string
	Phone              string
	Country            string
	ConsultationMethod string
	Message            string
	ReceivedAt         string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string

	dialer dialer
}
