package models

type UploadResponse struct {
	ID           string `json:"id"`
	ParseID      string `json:"parse_id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
}

type ParseResultResponse struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	Result       *CvRecord `json:"result,omitempty"`
	ErrorMessage *string   `json:"error_message,omitempty"`
}

// CvRecord is the aggregate output of the CV extraction pipeline. Every field
// is independently optional: absent source data yields nil or an empty slice,
// never an error.
type CvRecord struct {
	Name       *string  `json:"name"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
	Skills     []string `json:"skills"`
	Languages  []string `json:"languages"`
	Interests  []string `json:"interests"`
}

// JobMatch is one ranked entry returned when matching an employee against jobs.
type JobMatch struct {
	Job           *Job     `json:"job"`
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	ContractMatch bool     `json:"contract_match"`
}

// EmployeeMatch is one ranked entry returned when matching a job against employees.
type EmployeeMatch struct {
	Employee      *Employee `json:"employee"`
	Score         float64   `json:"score"`
	MatchedSkills []string  `json:"matched_skills"`
	MissingSkills []string  `json:"missing_skills"`
	ContractMatch bool      `json:"contract_match"`
}
