package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

// modeKeyboard builds the quiz mode selection keyboard, one mode per row.
func modeKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entities.ChoiceModes))
	for _, mode := range entities.ChoiceModes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(modeLabels[mode], quizCallback(quizMode, mode)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// optionsKeyboard builds the answer keyboard for a choice question: one
// option per row plus a stop button.
func optionsKeyboard(q entities.Question) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options)+1)
	for i, opt := range q.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(opt, quizCallback(quizAnswer, strconv.Itoa(i))),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏹ Stop", quizCallback(quizStop)),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
