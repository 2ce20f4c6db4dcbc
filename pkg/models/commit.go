package models

// Commit represents an immutable record of one change-set applied on a branch
type Commit struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Changes   string `json:"changes"`
	Branch    string `json:"branch"`
}

// ShortID returns a shortened commit identifier suitable for table output
func (c Commit) ShortID() string {
	if len(c.ID) > 8 {
		return c.ID[:8]
	}
	return c.ID
}
