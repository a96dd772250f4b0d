package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/service"
)

type Controller struct {
	users       service.UserService
	courses     service.CourseService
	objectives  service.ObjectiveService
	questions   service.QuestionService
	assessments service.AssessmentService
	attempts    service.AttemptService
	training    service.TrainingService
	stats       service.CourseStatsService
}

func NewController(
	users service.UserService,
	courses service.CourseService,
	objectives service.ObjectiveService,
	questions service.QuestionService,
	assessments service.AssessmentService,
	attempts service.AttemptService,
	training service.TrainingService,
	stats service.CourseStatsService,
) *Controller {
	return &Controller{
		users:       users,
		courses:     courses,
		objectives:  objectives,
		questions:   questions,
		assessments: assessments,
		attempts:    attempts,
		training:    training,
		stats:       stats,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	apiV1 := router.Group("/api/v1")
	{
		users := apiV1.Group("/users")
		users.POST("", ctrl.RegisterUserHandler)
		users.GET("", ctrl.GetAllUsersHandler)
		users.GET("/:id", ctrl.GetUserHandler)

		courses := apiV1.Group("/courses")
		courses.POST("", ctrl.CreateCourseHandler)
		courses.GET("", ctrl.GetAllCoursesHandler)
		courses.GET("/:id", ctrl.GetCourseHandler)
		courses.DELETE("/:id", ctrl.DeleteCourseHandler)
		courses.POST("/:id/enroll", ctrl.EnrollHandler)
		courses.GET("/:id/assessments", ctrl.GetCourseAssessmentsHandler)

		objectives := apiV1.Group("/objectives")
		objectives.POST("", ctrl.CreateObjectiveHandler)
		objectives.GET("", ctrl.GetAllObjectivesHandler)
		objectives.GET("/:id", ctrl.GetObjectiveHandler)
		objectives.DELETE("/:id", ctrl.DeleteObjectiveHandler)
		objectives.GET("/:id/mastery", ctrl.ObjectiveMasteryHandler)

		questions := apiV1.Group("/questions")
		questions.POST("", ctrl.CreateQuestionHandler)
		questions.GET("", ctrl.GetAllQuestionsHandler)
		questions.GET("/:id", ctrl.GetQuestionHandler)
		questions.PUT("/:id", ctrl.UpdateQuestionHandler)
		questions.DELETE("/:id", ctrl.DeleteQuestionHandler)

		assessments := apiV1.Group("/assessments")
		assessments.POST("", ctrl.CreateAssessmentHandler)
		assessments.GET("/:id", ctrl.GetAssessmentHandler)
		assessments.DELETE("/:id", ctrl.DeleteAssessmentHandler)
		assessments.POST("/:id/questions", ctrl.AddAssessmentQuestionsHandler)
		assessments.POST("/:id/objectives", ctrl.AddAssessmentObjectivesHandler)
		assessments.GET("/:id/training", ctrl.ClassifyHandler)
		assessments.GET("/:id/objectives-to-review", ctrl.ObjectivesToReviewHandler)
		assessments.GET("/:id/stats", ctrl.CourseStatsHandler)

		attempts := apiV1.Group("/attempts")
		attempts.POST("", ctrl.SubmitAttemptHandler)
	}
}

func pathID(c *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(val), true
}

func queryID(c *gin.Context, name string, required bool) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		if required {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: name + " is required"})
			return nil, false
		}
		return nil, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return nil, false
	}
	id := uint(val)
	return &id, true
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
}

// --- Users ---

// RegisterUserHandler godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "User data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /users [post]
func (ctrl *Controller) RegisterUserHandler(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.users.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetUserHandler godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (ctrl *Controller) GetUserHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.users.GetUser(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllUsersHandler godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Router /users [get]
func (ctrl *Controller) GetAllUsersHandler(c *gin.Context) {
	resp, err := ctrl.users.GetAllUsers()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Courses ---

// CreateCourseHandler godoc
// @Summary Create a course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CreateCourseRequest true "Course data"
// @Success 201 {object} dto.CourseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses [post]
func (ctrl *Controller) CreateCourseHandler(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.courses.CreateCourse(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetCourseHandler godoc
// @Summary Get a course with its roster and assessments
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (ctrl *Controller) GetCourseHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.courses.GetCourse(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllCoursesHandler godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponse
// @Router /courses [get]
func (ctrl *Controller) GetAllCoursesHandler(c *gin.Context) {
	resp, err := ctrl.courses.GetAllCourses()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteCourseHandler godoc
// @Summary Delete a course
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [delete]
func (ctrl *Controller) DeleteCourseHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.courses.DeleteCourse(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EnrollHandler godoc
// @Summary Enroll a user in a course
// @Tags courses
// @Accept json
// @Param id path int true "Course ID"
// @Param enrollment body dto.EnrollRequest true "User to enroll"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/enroll [post]
func (ctrl *Controller) EnrollHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.courses.Enroll(id, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCourseAssessmentsHandler godoc
// @Summary List a course's assessments
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} dto.AssessmentResponse
// @Router /courses/{id}/assessments [get]
func (ctrl *Controller) GetCourseAssessmentsHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.assessments.GetCourseAssessments(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Objectives ---

// CreateObjectiveHandler godoc
// @Summary Create a learning objective
// @Tags objectives
// @Accept json
// @Produce json
// @Param author_id query int true "Author user ID"
// @Param objective body dto.CreateObjectiveRequest true "Objective data"
// @Success 201 {object} dto.ObjectiveResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /objectives [post]
func (ctrl *Controller) CreateObjectiveHandler(c *gin.Context) {
	authorID, ok := queryID(c, "author_id", true)
	if !ok {
		return
	}
	var req dto.CreateObjectiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.objectives.CreateObjective(*authorID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetObjectiveHandler godoc
// @Summary Get an objective
// @Tags objectives
// @Produce json
// @Param id path int true "Objective ID"
// @Success 200 {object} dto.ObjectiveResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /objectives/{id} [get]
func (ctrl *Controller) GetObjectiveHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.objectives.GetObjective(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllObjectivesHandler godoc
// @Summary List objectives
// @Tags objectives
// @Produce json
// @Success 200 {array} dto.ObjectiveResponse
// @Router /objectives [get]
func (ctrl *Controller) GetAllObjectivesHandler(c *gin.Context) {
	resp, err := ctrl.objectives.GetAllObjectives()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteObjectiveHandler godoc
// @Summary Delete an objective
// @Tags objectives
// @Param id path int true "Objective ID"
// @Success 204
// @Router /objectives/{id} [delete]
func (ctrl *Controller) DeleteObjectiveHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.objectives.DeleteObjective(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ObjectiveMasteryHandler godoc
// @Summary Get a user's mastery of an objective
// @Description Average latest-attempt e-factor plus the weakest-first review list.
// @Tags training
// @Produce json
// @Param id path int true "Objective ID"
// @Param user_id query int true "User ID"
// @Param assessment_id query int false "Restrict to an assessment's questions"
// @Success 200 {object} dto.ObjectiveMasteryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /objectives/{id}/mastery [get]
func (ctrl *Controller) ObjectiveMasteryHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryID(c, "user_id", true)
	if !ok {
		return
	}
	assessmentID, ok := queryID(c, "assessment_id", false)
	if !ok {
		return
	}
	resp, err := ctrl.objectives.Mastery(id, *userID, assessmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Questions ---

// CreateQuestionHandler godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Param author_id query int true "Author user ID"
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	authorID, ok := queryID(c, "author_id", true)
	if !ok {
		return
	}
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.questions.CreateQuestion(*authorID, req)
	if err != nil {
		log.Warn().Err(err).Msg("question creation rejected")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetQuestionHandler godoc
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.questions.GetQuestion(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAllQuestionsHandler godoc
// @Summary List questions
// @Tags questions
// @Produce json
// @Param objective_id query int false "Filter by objective"
// @Success 200 {array} dto.QuestionResponse
// @Router /questions [get]
func (ctrl *Controller) GetAllQuestionsHandler(c *gin.Context) {
	objectiveID, ok := queryID(c, "objective_id", false)
	if !ok {
		return
	}
	resp, err := ctrl.questions.GetAllQuestions(objectiveID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuestionHandler godoc
// @Summary Update a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [put]
func (ctrl *Controller) UpdateQuestionHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.questions.UpdateQuestion(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question and its attempt history
// @Tags questions
// @Param id path int true "Question ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.questions.DeleteQuestion(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Assessments ---

// CreateAssessmentHandler godoc
// @Summary Create an assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param assessment body dto.CreateAssessmentRequest true "Assessment data"
// @Success 201 {object} dto.AssessmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /assessments [post]
func (ctrl *Controller) CreateAssessmentHandler(c *gin.Context) {
	var req dto.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.assessments.CreateAssessment(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAssessmentHandler godoc
// @Summary Get an assessment with its questions and objectives
// @Tags assessments
// @Produce json
// @Param id path int true "Assessment ID"
// @Success 200 {object} dto.AssessmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id} [get]
func (ctrl *Controller) GetAssessmentHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.assessments.GetAssessment(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAssessmentHandler godoc
// @Summary Delete an assessment
// @Tags assessments
// @Param id path int true "Assessment ID"
// @Success 204
// @Router /assessments/{id} [delete]
func (ctrl *Controller) DeleteAssessmentHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.assessments.DeleteAssessment(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type idListRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// AddAssessmentQuestionsHandler godoc
// @Summary Add questions to an assessment
// @Tags assessments
// @Accept json
// @Param id path int true "Assessment ID"
// @Param ids body controller.idListRequest true "Question IDs"
// @Success 204
// @Router /assessments/{id}/questions [post]
func (ctrl *Controller) AddAssessmentQuestionsHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req idListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.assessments.AddQuestions(id, req.IDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddAssessmentObjectivesHandler godoc
// @Summary Add objectives to an assessment
// @Tags assessments
// @Accept json
// @Param id path int true "Assessment ID"
// @Param ids body controller.idListRequest true "Objective IDs"
// @Success 204
// @Router /assessments/{id}/objectives [post]
func (ctrl *Controller) AddAssessmentObjectivesHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req idListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := ctrl.assessments.AddObjectives(id, req.IDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Training ---

// SubmitAttemptHandler godoc
// @Summary Submit an attempt
// @Description Grades the response, runs the scheduler and records the attempt.
// @Tags training
// @Accept json
// @Produce json
// @Param user_id query int true "User ID"
// @Param attempt body dto.SubmitAttemptRequest true "Attempt data"
// @Success 201 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid rating or payload"
// @Failure 404 {object} dto.ErrorResponse "Unknown question"
// @Failure 422 {object} dto.ReviewNeededResponse "Answer needs manual review"
// @Router /attempts [post]
func (ctrl *Controller) SubmitAttemptHandler(c *gin.Context) {
	userID, ok := queryID(c, "user_id", true)
	if !ok {
		return
	}
	var req dto.SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.attempts.SubmitAttempt(*userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNeedsReview):
			c.JSON(http.StatusUnprocessableEntity, dto.ReviewNeededResponse{
				QuestionID:  req.QuestionID,
				NeedsReview: true,
				Message:     "answer could not be verified automatically",
			})
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		default:
			respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ClassifyHandler godoc
// @Summary Classify an assessment's questions by due state
// @Description Unattempted, due, overdue, waiting, fresh and repeat sets plus today's breakdown.
// @Tags training
// @Produce json
// @Param id path int true "Assessment ID"
// @Param user_id query int true "User ID"
// @Success 200 {object} dto.ClassificationResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id}/training [get]
func (ctrl *Controller) ClassifyHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryID(c, "user_id", true)
	if !ok {
		return
	}
	resp, err := ctrl.training.Classify(*userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObjectivesToReviewHandler godoc
// @Summary Rank an assessment's objectives for review
// @Tags training
// @Produce json
// @Param id path int true "Assessment ID"
// @Param user_id query int true "User ID"
// @Param min_count query int false "Minimum objectives to return" default(3)
// @Param max_count query int false "Maximum objectives to return"
// @Success 200 {array} dto.ObjectiveAverageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id}/objectives-to-review [get]
func (ctrl *Controller) ObjectivesToReviewHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := queryID(c, "user_id", true)
	if !ok {
		return
	}
	minCount := 3
	if raw := c.Query("min_count"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_count"})
			return
		}
		minCount = val
	}
	var maxCount *int
	if raw := c.Query("max_count"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_count"})
			return
		}
		maxCount = &val
	}
	resp, err := ctrl.objectives.ObjectivesToReview(*userID, id, minCount, maxCount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CourseStatsHandler godoc
// @Summary Class-wide statistics for an assessment
// @Description Star rating and skill breakdown for one objective plus the questions-remaining histogram.
// @Tags training
// @Produce json
// @Param id path int true "Assessment ID"
// @Param objective_id query int true "Objective ID"
// @Success 200 {object} dto.CourseStatsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /assessments/{id}/stats [get]
func (ctrl *Controller) CourseStatsHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	objectiveID, ok := queryID(c, "objective_id", true)
	if !ok {
		return
	}
	resp, err := ctrl.stats.Stats(id, *objectiveID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
