package domain

// TrainingSession is one scheduled slot of the Formation/Academy offer.
type TrainingSession struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Subject  string `json:"subject"`
	Module   string `json:"module"`
	Duration string `json:"duration"`
	Location string `json:"location"`
	Places   int    `json:"places"`
	Total    int    `json:"total"`
}
