package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/practlab/cadence/internal/dto"
	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	CreateQuestion(authorID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	GetAllQuestions(objectiveID *uint) ([]dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo       repository.QuestionRepository
	objectives repository.ObjectiveRepository
}

func NewQuestionService(repo repository.QuestionRepository, objectives repository.ObjectiveRepository) QuestionService {
	return &questionService{repo: repo, objectives: objectives}
}

func (s *questionService) CreateQuestion(authorID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if req.ObjectiveID != nil {
		if _, err := s.objectives.FindByID(*req.ObjectiveID); err != nil {
			log.Warn().Err(err).Uint("objectiveID", *req.ObjectiveID).Msg("invalid objective for question")
			return nil, fmt.Errorf("invalid objective: %d", *req.ObjectiveID)
		}
	}
	if err := validateKindPayload(req); err != nil {
		return nil, err
	}

	question := model.Question{
		Prompt:      req.Prompt,
		Kind:        model.QuestionKind(req.Kind),
		Answer:      req.Answer,
		RegexMatch:  req.RegexMatch,
		ObjectiveID: req.ObjectiveID,
		AuthorID:    authorID,
		Public:      true,
		Enabled:     true,
	}
	if req.Public != nil {
		question.Public = *req.Public
	}
	if req.Enabled != nil {
		question.Enabled = *req.Enabled
	}
	for _, o := range req.Options {
		question.Options = append(question.Options, model.QuestionOption{Text: o.Text, Correct: o.Correct})
	}
	for _, b := range req.Blocks {
		question.Blocks = append(question.Blocks, model.JumbleBlock{
			Code: b.Code, CorrectIndex: b.CorrectIndex, CorrectIndent: b.CorrectIndent,
		})
	}

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("creating question failed")
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func validateKindPayload(req dto.CreateQuestionRequest) error {
	switch model.QuestionKind(req.Kind) {
	case model.KindAutoCheck, model.KindSingleLineCode:
		if req.Answer == "" {
			return fmt.Errorf("%s questions require an answer", req.Kind)
		}
	case model.KindMultipleChoice, model.KindMultipleSelection:
		correct := 0
		for _, o := range req.Options {
			if o.Correct {
				correct++
			}
		}
		if len(req.Options) < 2 || correct == 0 {
			return fmt.Errorf("%s questions require at least two options and a correct one", req.Kind)
		}
		if model.QuestionKind(req.Kind) == model.KindMultipleChoice && correct != 1 {
			return fmt.Errorf("multiple_choice questions require exactly one correct option")
		}
	case model.KindCodeJumble:
		placed := 0
		for _, b := range req.Blocks {
			if b.CorrectIndex >= 0 {
				placed++
			}
		}
		if placed == 0 {
			return fmt.Errorf("code_jumble questions require at least one placed block")
		}
	}
	return nil
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions(objectiveID *uint) ([]dto.QuestionResponse, error) {
	var questions []model.Question
	var err error
	if objectiveID != nil {
		questions, err = s.repo.FindByObjectiveID(*objectiveID)
	} else {
		questions, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, err
	}
	var resp []dto.QuestionResponse
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if req.Prompt != nil {
		question.Prompt = *req.Prompt
	}
	if req.Answer != nil {
		question.Answer = *req.Answer
	}
	if req.RegexMatch != nil {
		question.RegexMatch = *req.RegexMatch
	}
	if req.ObjectiveID != nil {
		if _, err := s.objectives.FindByID(*req.ObjectiveID); err != nil {
			return nil, fmt.Errorf("invalid objective: %d", *req.ObjectiveID)
		}
		question.ObjectiveID = req.ObjectiveID
	}
	if req.Public != nil {
		question.Public = *req.Public
	}
	if req.Enabled != nil {
		question.Enabled = *req.Enabled
	}
	if err := s.repo.Update(question); err != nil {
		return nil, err
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
