package dto

type DiagnoseTextRequest struct {
	CustomerId string `json:"customer_id" validate:"required"`
	VehicleId  string `json:"vehicle_id" validate:"required"`
	Text       string `json:"text" validate:"required_without=SessionId"`
	SessionId  string `json:"session_id"`
}

// DiagnoseMediaForm carries the non-file fields of the voice and image uploads
type DiagnoseMediaForm struct {
	CustomerId string `form:"customer_id" validate:"required"`
	VehicleId  string `form:"vehicle_id" validate:"required"`
	SessionId  string `form:"session_id"`
	Text       string `form:"text"`
}

type AnswerRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Answer    string `json:"answer" validate:"required"`
}

type CandidateResponse struct {
	ProblemId       string  `json:"problem_id"`
	ProblemName     string  `json:"problem_name"`
	Description     string  `json:"description"`
	SimilarityScore float64 `json:"similarity_score"`
}

type DiagnosisResponse struct {
	SessionId      string              `json:"session_id"`
	Stage          string              `json:"stage"`
	Question       string              `json:"question,omitempty"`
	QuestionNumber int                 `json:"question_number,omitempty"`
	TotalQuestions int                 `json:"total_questions,omitempty"`
	Candidates     []string            `json:"candidates,omitempty"`
	TopProblems    []CandidateResponse `json:"top_problems,omitempty"`
	Message        string              `json:"message,omitempty"`
	Transcription  string              `json:"transcription,omitempty"`
	ImageAnalysis  string              `json:"image_analysis,omitempty"`
}
