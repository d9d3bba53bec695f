package entities

// Quiz modes. Choice modes carry four shuffled options, text modes expect
// a free-text answer graded by the answer checker.
const (
	ModeWordToMeaning     = "word-to-meaning"
	ModePhoneticToMeaning = "phonetic-to-meaning"
	ModeWordToPhonetic    = "word-to-phonetic"
	ModeMeaningToWord     = "meaning-to-word"
	ModeTypeMeaning       = "type-meaning"
	ModeTypeWord          = "type-word"
)

// ChoiceModes lists the multiple-choice quiz modes.
var ChoiceModes = []string{
	ModeWordToMeaning,
	ModePhoneticToMeaning,
	ModeWordToPhonetic,
	ModeMeaningToWord,
}

// TextModes lists the free-text quiz modes.
var TextModes = []string{
	ModeTypeMeaning,
	ModeTypeWord,
}

// KnownMode reports whether mode is one of the supported quiz modes.
func KnownMode(mode string) bool {
	return AnswerField(mode) != ""
}

// IsTextMode reports whether mode expects a typed answer instead of a
// multiple choice selection.
func IsTextMode(mode string) bool {
	return mode == ModeTypeMeaning || mode == ModeTypeWord
}

// AnswerField returns which word field the answer of the given mode is
// drawn from: "meaning", "phonetic" or "word".
func AnswerField(mode string) string {
	switch mode {
	case ModeWordToMeaning, ModePhoneticToMeaning, ModeTypeMeaning:
		return "meaning"
	case ModeWordToPhonetic:
		return "phonetic"
	case ModeMeaningToWord, ModeTypeWord:
		return "word"
	default:
		return ""
	}
}

// Question is one generated quiz question. Word carries the target's
// word value alongside its id. Options is empty for text modes.
// CorrectIndex is only meaningful for choice questions and is not part
// of the wire format.
type Question struct {
	WordID        int      `json:"wordId"`
	Word          string   `json:"word"`
	Mode          string   `json:"questionType"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectIndex  int      `json:"-"`
	CorrectAnswer string   `json:"correctAnswer"`
}
