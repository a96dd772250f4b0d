// Package grader decides whether a submitted response answers a question
// correctly. Grading is deterministic per question kind; only short-answer
// questions are left to the learner's own verification.
package grader

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/practlab/cadence/internal/model"
	"github.com/practlab/cadence/internal/pyast"
)

// Placement is where the learner put one jumble block.
type Placement struct {
	BlockID  uint `json:"block_id"`
	Position int  `json:"position"`
	Indent   int  `json:"indent"`
}

// Submission carries the response payload; which field applies depends on the
// question kind.
type Submission struct {
	Text       string
	OptionIDs  []uint
	Placements []Placement
}

// Result is the grading outcome. AutoGraded is false for short-answer
// questions (the learner self-verifies) and for code questions the comparator
// cannot judge; NeedsReview marks the latter so callers can route the attempt
// to manual review instead of recording it wrong.
type Result struct {
	Correct     bool
	AutoGraded  bool
	NeedsReview bool
}

// Grade evaluates a submission against the question's reference answer.
// A non-nil error means the question itself is misconfigured, not that the
// response is wrong.
func Grade(question *model.Question, sub Submission) (Result, error) {
	switch question.Kind {
	case model.KindShortAnswer:
		return Result{}, nil

	case model.KindAutoCheck:
		correct, err := gradeAutoCheck(question, sub.Text)
		if err != nil {
			return Result{}, err
		}
		return Result{Correct: correct, AutoGraded: true}, nil

	case model.KindMultipleChoice, model.KindMultipleSelection:
		return Result{Correct: gradeSelection(question, sub.OptionIDs), AutoGraded: true}, nil

	case model.KindCodeJumble:
		return Result{Correct: gradeJumble(question, sub.Placements), AutoGraded: true}, nil

	case model.KindSingleLineCode:
		same, err := pyast.SameTree(question.Answer, sub.Text)
		if errors.Is(err, pyast.ErrUnsupportedSyntax) {
			return Result{NeedsReview: true}, nil
		}
		if err != nil {
			return Result{}, err
		}
		return Result{Correct: same, AutoGraded: true}, nil
	}
	return Result{}, fmt.Errorf("grader: unknown question kind %q", question.Kind)
}

func gradeAutoCheck(question *model.Question, text string) (bool, error) {
	if question.RegexMatch {
		re, err := regexp.Compile("^(?:" + question.Answer + ")$")
		if err != nil {
			return false, fmt.Errorf("grader: invalid answer pattern for question %d: %w", question.ID, err)
		}
		return re.MatchString(strings.TrimSpace(text)), nil
	}
	return strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(question.Answer)), nil
}

// gradeSelection requires the selected option set to equal the correct option
// set. A single-choice question is just the one-element case.
func gradeSelection(question *model.Question, selected []uint) bool {
	correct := make(map[uint]bool)
	for _, opt := range question.Options {
		if opt.Correct {
			correct[opt.ID] = true
		}
	}
	if len(selected) != len(correct) {
		return false
	}
	seen := make(map[uint]bool, len(selected))
	for _, id := range selected {
		if !correct[id] || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// gradeJumble requires every non-distractor block placed at its correct
// position and indent, and no distractor placed at all.
func gradeJumble(question *model.Question, placements []Placement) bool {
	blocks := make(map[uint]model.JumbleBlock, len(question.Blocks))
	required := 0
	for _, b := range question.Blocks {
		blocks[b.ID] = b
		if b.CorrectIndex >= 0 {
			required++
		}
	}
	if len(placements) != required {
		return false
	}
	placed := make(map[uint]bool, len(placements))
	for _, p := range placements {
		b, ok := blocks[p.BlockID]
		if !ok || placed[p.BlockID] {
			return false
		}
		placed[p.BlockID] = true
		if b.CorrectIndex < 0 || b.CorrectIndex != p.Position || b.CorrectIndent != p.Indent {
			return false
		}
	}
	return true
}
