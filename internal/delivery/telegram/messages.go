// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

const (
	msgWelcome = "Hi! I help you practice your vocabulary.\n\n" +
		"/quiz — start a practice session\n" +
		"/random — show a random word\n" +
		"/topics — list your topics\n" +
		"/help — show this message"
	msgUnknownCommand  = "Unknown command. Try /quiz, /random or /topics."
	msgChooseMode      = "Choose a quiz mode:"
	msgNoActiveSession = "No quiz is running. Start one with /quiz."
	msgNotEnoughWords  = "You need at least 4 words before a quiz can be built. Add more words first."
	msgNoWords         = "Your word list is empty. Add some words first."
	msgNoTopics        = "You have no topics yet. Words get a topic when you add them."
	msgQuizStopped     = "Quiz stopped."
	msgInternalError   = "Something went wrong. Please try again later."
)

// modeLabels maps quiz modes to button labels.
var modeLabels = map[string]string{
	entities.ModeWordToMeaning:     "Word → Meaning",
	entities.ModePhoneticToMeaning: "Phonetic → Meaning",
	entities.ModeWordToPhonetic:    "Word → Phonetic",
	entities.ModeMeaningToWord:     "Meaning → Word",
}

func newHTMLMessage(chatID int64, text string) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	return msg
}

func formatWord(w entities.Word) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>", w.Word)
	if w.Phonetic != "" {
		fmt.Fprintf(&b, " [%s]", w.Phonetic)
	}
	fmt.Fprintf(&b, "\n%s", w.Meaning)
	if w.Topic != "" {
		fmt.Fprintf(&b, "\n<i>%s</i>", w.Topic)
	}
	return b.String()
}

func formatTopics(topics []entities.TopicSummary) string {
	var b strings.Builder
	b.WriteString("<b>Your topics</b>\n\n")
	for _, t := range topics {
		fmt.Fprintf(&b, "%s — %d\n", t.Name, t.Count)
	}
	return b.String()
}

func formatQuestion(num, total int, q entities.Question) string {
	return fmt.Sprintf("<b>Question %d/%d</b>\n\n%s", num, total, q.Prompt)
}

func formatFeedback(correct bool, correctAnswer string) string {
	if correct {
		return "✅ Correct!"
	}
	return fmt.Sprintf("❌ Wrong. The answer is <b>%s</b>.", correctAnswer)
}

func formatSummary(s *entities.PracticeSession) string {
	return fmt.Sprintf(
		"<b>Quiz finished!</b>\n\nScore: %d/%d",
		s.CorrectAnswers, len(s.Questions),
	)
}
