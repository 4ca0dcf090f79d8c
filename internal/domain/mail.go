package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

const MailTypeRoster = "roster"

// RosterMailData is the payload of a roster delivery mail: the full artifact
// set so the consumer can render the summary and attach the CSV without a
// database round trip.
type RosterMailData struct {
	PlanName  string        `json:"planName"`
	DayDate   string        `json:"dayDate"`
	Artifacts PlanArtifacts `json:"artifacts"`
}
