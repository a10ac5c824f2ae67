// Package content loads and renders the experience timeline document.
package content

// Document is the expected shape of experience.json.
type Document struct {
	Experience []Entry `json:"experience"`
}

// Entry is one work/experience record. All fields are plain text,
// sourced from the external document and never mutated.
type Entry struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Location     string   `json:"location"`
	Description  string   `json:"description,omitempty"`
	Highlights   []string `json:"highlights,omitempty"`
}

// Period returns the "start - end" range for display.
func (e Entry) Period() string {
	if e.StartDate == "" && e.EndDate == "" {
		return ""
	}
	return e.StartDate + " - " + e.EndDate
}
