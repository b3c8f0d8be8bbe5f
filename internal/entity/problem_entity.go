package entity

// Problem is an immutable catalog entry the diagnosis engine can suggest
type Problem struct {
	Id                      string
	Name                    string
	Descriptions            []string
	LabourCategory          string
	EstimatedLabourHours    float64
	EstimatedServiceMinutes int
	PartsNeeded             []string
}

// Excerpt is the first description fragment, empty when there is none
func (p *Problem) Excerpt() string {
	if len(p.Descriptions) == 0 {
		return ""
	}
	return p.Descriptions[0]
}
