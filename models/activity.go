package models

// Activity is the inbound chat payload accepted on /api/messages.
type Activity struct {
	Type string `json:"type,omitempty"`
	From string `json:"from" binding:"required"`
	Text string `json:"text" binding:"required"`
}

// ActivityReply is the outbound chat payload returned to the client.
type ActivityReply struct {
	Type string `json:"type"`
	Step Step   `json:"step"`
	Text string `json:"text"`
}
