package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

const (
	// minWordsForQuiz is the smallest collection that still yields one
	// correct answer plus three distractors.
	minWordsForQuiz = 4
	distractorCount = 3
)

// QuizService generates quiz questions from the stored vocabulary.
type QuizService struct {
	repository WordRepository

	rng *rand.Rand
}

func NewQuizService(repository WordRepository) *QuizService {
	return &QuizService{
		repository: repository,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate builds one question for the given mode. When topic is
// non-empty the target word is drawn from that topic only; distractors
// always come from the full collection.
func (s *QuizService) Generate(ctx context.Context, mode, topic string) (*entities.Question, error) {
	if !entities.KnownMode(mode) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	words, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}

	if len(words) < minWordsForQuiz {
		return nil, ErrNotEnoughWords
	}

	// Only words whose answer field is filled in can be asked about:
	// phonetic is optional, so a word without one must never become the
	// target of a word-to-phonetic question.
	field := entities.AnswerField(mode)
	inTopic := 0
	pool := make([]entities.Word, 0, len(words))
	for _, w := range words {
		if topic != "" && w.Topic != topic {
			continue
		}
		inTopic++
		if fieldValue(w, field) == "" {
			continue
		}
		pool = append(pool, w)
	}

	if topic != "" && inTopic == 0 {
		return nil, ErrNoWordsInTopic
	}
	if len(pool) == 0 {
		return nil, ErrNotEnoughWords
	}

	target := pool[s.rng.Intn(len(pool))]
	correct := fieldValue(target, field)

	q := &entities.Question{
		WordID:        target.ID,
		Word:          target.Word,
		Mode:          mode,
		Prompt:        prompt(mode, target),
		CorrectAnswer: correct,
	}

	if entities.IsTextMode(mode) {
		return q, nil
	}

	distractors, err := s.pickDistractors(words, target, mode)
	if err != nil {
		return nil, err
	}

	q.Options, q.CorrectIndex = buildOptionsWithCorrect(s.rng, correct, distractors)

	return q, nil
}

// GenerateSet builds up to count questions with pairwise distinct target
// words. Fewer questions come back when the collection has fewer
// eligible words than count.
func (s *QuizService) GenerateSet(ctx context.Context, mode, topic string, count int) ([]entities.Question, error) {
	questions := make([]entities.Question, 0, count)
	seen := make(map[int]bool, count)

	// Targets are sampled, so duplicates are skipped and the attempt cap
	// bounds the loop when fewer distinct words exist than count.
	for attempts := 0; len(questions) < count && attempts < count*20; attempts++ {
		q, err := s.Generate(ctx, mode, topic)
		if err != nil {
			return nil, err
		}
		if seen[q.WordID] {
			continue
		}
		seen[q.WordID] = true
		questions = append(questions, *q)
	}

	return questions, nil
}

// pickDistractors samples three answer-field values from other words,
// none of which repeats the correct answer or each other.
func (s *QuizService) pickDistractors(words []entities.Word, target entities.Word, mode string) ([]string, error) {
	field := entities.AnswerField(mode)
	correct := fieldValue(target, field)

	candidates := make([]entities.Word, 0, len(words))
	for _, w := range words {
		if w.ID != target.ID {
			candidates = append(candidates, w)
		}
	}

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	seen := map[string]bool{correct: true}
	distractors := make([]string, 0, distractorCount)
	for _, c := range candidates {
		if len(distractors) == distractorCount {
			break
		}
		value := fieldValue(c, field)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		distractors = append(distractors, value)
	}

	// Too many words sharing the same value: multiple choice would show
	// duplicate options, so the quiz cannot be built.
	if len(distractors) < distractorCount {
		return nil, ErrNotEnoughWords
	}

	return distractors, nil
}

// buildOptionsWithCorrect shuffles the correct answer into the
// distractors and reports its final position.
func buildOptionsWithCorrect(rng *rand.Rand, correct string, distractors []string) ([]string, int) {
	options := make([]string, 0, 1+len(distractors))
	options = append(options, correct)
	options = append(options, distractors...)

	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == correct {
			correctIndex = i
			break
		}
	}

	return options, correctIndex
}

func fieldValue(w entities.Word, field string) string {
	switch field {
	case "meaning":
		return w.Meaning
	case "phonetic":
		return w.Phonetic
	case "word":
		return w.Word
	default:
		return ""
	}
}

func prompt(mode string, w entities.Word) string {
	switch mode {
	case entities.ModeWordToMeaning:
		return fmt.Sprintf("What does %q mean?", w.Word)
	case entities.ModePhoneticToMeaning:
		return fmt.Sprintf("What does the word read %q mean?", w.Phonetic)
	case entities.ModeWordToPhonetic:
		return fmt.Sprintf("How is %q read?", w.Word)
	case entities.ModeMeaningToWord:
		return fmt.Sprintf("Which word means %q?", w.Meaning)
	case entities.ModeTypeMeaning:
		return fmt.Sprintf("Type the meaning of %q.", w.Word)
	case entities.ModeTypeWord:
		return fmt.Sprintf("Type the word that means %q.", w.Meaning)
	default:
		return ""
	}
}
