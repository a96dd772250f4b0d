package dto

import "time"

type RegisterUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Admin     bool   `json:"admin"`
}

type CreateCourseRequest struct {
	Name        string     `json:"name" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type EnrollRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type CreateObjectiveRequest struct {
	Description string `json:"description" binding:"required"`
	Public      *bool  `json:"public"`
}

type QuestionOptionRequest struct {
	Text    string `json:"text" binding:"required"`
	Correct bool   `json:"correct"`
}

type JumbleBlockRequest struct {
	Code string `json:"code" binding:"required"`
	// CorrectIndex < 0 marks a distractor.
	CorrectIndex  int `json:"correct_index"`
	CorrectIndent int `json:"correct_indent"`
}

type CreateQuestionRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Kind   string `json:"kind" binding:"required,oneof=short_answer auto_check multiple_choice multiple_selection code_jumble single_line_code"`

	Answer     string `json:"answer"`
	RegexMatch bool   `json:"regex_match"`

	Options []QuestionOptionRequest `json:"options" binding:"omitempty,dive"`
	Blocks  []JumbleBlockRequest    `json:"blocks" binding:"omitempty,dive"`

	ObjectiveID *uint `json:"objective_id"`
	Public      *bool `json:"public"`
	Enabled     *bool `json:"enabled"`
}

type UpdateQuestionRequest struct {
	Prompt      *string `json:"prompt"`
	Answer      *string `json:"answer"`
	RegexMatch  *bool   `json:"regex_match"`
	ObjectiveID *uint   `json:"objective_id"`
	Public      *bool   `json:"public"`
	Enabled     *bool   `json:"enabled"`
}

type CreateAssessmentRequest struct {
	CourseID     uint       `json:"course_id" binding:"required"`
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	Time         *time.Time `json:"time"`
	QuestionIDs  []uint     `json:"question_ids"`
	ObjectiveIDs []uint     `json:"objective_ids"`
}

type PlacementRequest struct {
	BlockID  uint `json:"block_id" binding:"required"`
	Position int  `json:"position"`
	Indent   int  `json:"indent"`
}

// SubmitAttemptRequest carries the response payload for any question kind.
// Correct is the learner's own verdict for short-answer questions; Rating is
// the 0-5 recall rating (difficulty for auto-graded kinds, full self-rating
// for short answer).
type SubmitAttemptRequest struct {
	QuestionID uint               `json:"question_id" binding:"required"`
	Response   string             `json:"response"`
	OptionIDs  []uint             `json:"option_ids"`
	Placements []PlacementRequest `json:"placements" binding:"omitempty,dive"`
	Correct    *bool              `json:"correct"`
	Rating     *int               `json:"rating"`
}
