package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type HandoverMailData struct {
	Author  string `json:"author"`
	Date    string `json:"date"`
	Content string `json:"content"`
}
