package dto

// ClusterScoreDTO is the per-cluster slice of a session's score snapshot.
type ClusterScoreDTO struct {
	ClusterID        string `json:"clusterId"`
	ClusterName      string `json:"clusterName,omitempty"`
	TotalQuestions   int    `json:"totalQuestions"`
	CorrectAnswers   int    `json:"correctAnswers"`
	IncorrectAnswers int    `json:"incorrectAnswers"`
	Unanswered       int    `json:"unanswered"`
	ScorePercentage  int    `json:"scorePercentage"`
}

// ScoreSummaryDTO mirrors one full ScoreRecord snapshot for a session.
// OverallScore is an integer percentage, truncated (33 for 1/3), matching
// the historical behaviour clients already depend on.
type ScoreSummaryDTO struct {
	OverallScore     int               `json:"overallScore"`
	TotalQuestions   int               `json:"totalQuestions"`
	CorrectAnswers   int               `json:"correctAnswers"`
	IncorrectAnswers int               `json:"incorrectAnswers"`
	Unanswered       int               `json:"unanswered"`
	ClusterScores    []ClusterScoreDTO `json:"clusterScores"`
}

// PathwayViewDTO is one ranked pathway recommendation. Pathname carries the
// ordinal label ("Primary", "Secondary", ...) clients key on; descriptive
// fields come from the pathway catalog and stay empty when no metadata
// exists for the cluster.
type PathwayViewDTO struct {
	Pathname    string   `json:"pathname"`
	Tag         string   `json:"tag"`
	ClusterID   string   `json:"clusterId"`
	ClusterName string   `json:"clusterName,omitempty"`
	CareerImage string   `json:"careerImage"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Subjects    []string `json:"subjects"`
	Careers     []string `json:"careers"`
	TryThis     string   `json:"tryThis"`
}
