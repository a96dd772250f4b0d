package dto

import "time"

type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

type CourseResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Users       []UserResponse `json:"users,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type ObjectiveResponse struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Public      bool      `json:"public"`
	AuthorID    uint      `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type QuestionOptionResponse struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type JumbleBlockResponse struct {
	ID            uint   `json:"id"`
	Code          string `json:"code"`
	CorrectIndex  int    `json:"correct_index"`
	CorrectIndent int    `json:"correct_indent"`
}

type QuestionResponse struct {
	ID          uint                     `json:"id"`
	Prompt      string                   `json:"prompt"`
	Kind        string                   `json:"kind"`
	Answer      string                   `json:"answer,omitempty"`
	RegexMatch  bool                     `json:"regex_match"`
	Options     []QuestionOptionResponse `json:"options,omitempty"`
	Blocks      []JumbleBlockResponse    `json:"blocks,omitempty"`
	ObjectiveID *uint                    `json:"objective_id,omitempty"`
	AuthorID    uint                     `json:"author_id"`
	Public      bool                     `json:"public"`
	Enabled     bool                     `json:"enabled"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

type AssessmentResponse struct {
	ID          uint                `json:"id"`
	CourseID    uint                `json:"course_id"`
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Time        *time.Time          `json:"time,omitempty"`
	Questions   []QuestionResponse  `json:"questions,omitempty"`
	Objectives  []ObjectiveResponse `json:"objectives,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type AttemptResponse struct {
	ID          uint      `json:"id"`
	QuestionID  uint      `json:"question_id"`
	Response    string    `json:"response"`
	Correct     bool      `json:"correct"`
	Quality     int       `json:"quality"`
	Interval    int       `json:"interval"`
	EFactor     float64   `json:"e_factor"`
	NextAttempt time.Time `json:"next_attempt"`
	Time        time.Time `json:"time"`
}

// ReviewNeededResponse is returned with HTTP 422 when a code answer uses a
// construct the equivalence checker cannot judge; the attempt is not recorded.
type ReviewNeededResponse struct {
	QuestionID  uint   `json:"question_id"`
	NeedsReview bool   `json:"needs_review"`
	Message     string `json:"message"`
}

// BreakdownTodayResponse buckets questions first attempted today by that
// first attempt's outcome.
type BreakdownTodayResponse struct {
	Incorrect []QuestionResponse `json:"incorrect"`
	Easy      []QuestionResponse `json:"easy"`
	Medium    []QuestionResponse `json:"medium"`
	Hard      []QuestionResponse `json:"hard"`
}

type ClassificationResponse struct {
	AssessmentID   uint                   `json:"assessment_id"`
	Unattempted    []QuestionResponse     `json:"unattempted"`
	Due            []QuestionResponse     `json:"due"`
	Overdue        []QuestionResponse     `json:"overdue"`
	Waiting        []QuestionResponse     `json:"waiting"`
	Fresh          []QuestionResponse     `json:"fresh"`
	Repeat         []QuestionResponse     `json:"repeat"`
	BreakdownToday BreakdownTodayResponse `json:"breakdown_today"`
}

type ObjectiveMasteryResponse struct {
	ObjectiveID     uint               `json:"objective_id"`
	EFactorAverage  float64            `json:"e_factor_average"`
	ReviewQuestions []QuestionResponse `json:"review_questions"`
}

type ObjectiveAverageResponse struct {
	Objective      ObjectiveResponse `json:"objective"`
	EFactorAverage float64           `json:"e_factor_average"`
}

type SkillBreakdownResponse struct {
	Proficient  int `json:"proficient"`
	Limited     int `json:"limited"`
	Undeveloped int `json:"undeveloped"`
}

type CourseStatsResponse struct {
	AssessmentID uint `json:"assessment_id"`
	ObjectiveID  uint `json:"objective_id,omitempty"`
	StarRating   int  `json:"star_rating"`
	// QuestionsRemaining counts enrolled users by how many assessment
	// questions they have not attempted: 0, 1-2, 3-5, 6-10, 11+.
	QuestionsRemaining [5]int                 `json:"questions_remaining"`
	Skill              SkillBreakdownResponse `json:"skill"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
