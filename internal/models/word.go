package models

import (
	"strings"
)

type Language string

const (
	LanguageEnglish Language = "english"
	LanguagePolish  Language = "polish"
	LanguageFrench  Language = "french"
	LanguageGerman  Language = "german"
	LanguageSpanish Language = "spanish"
)

var Languages = []Language{
	LanguageEnglish,
	LanguagePolish,
	LanguageFrench,
	LanguageGerman,
	LanguageSpanish,
}

// ParseLanguage accepts any letter case and surrounding spaces.
func ParseLanguage(s string) (Language, bool) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Languages {
		if l == known {
			return l, true
		}
	}
	return "", false
}

// Code is the ISO 639-1 code used by translation services.
func (l Language) Code() string {
	switch l {
	case LanguageEnglish:
		return "en"
	case LanguagePolish:
		return "pl"
	case LanguageFrench:
		return "fr"
	case LanguageGerman:
		return "de"
	case LanguageSpanish:
		return "es"
	}
	return ""
}

const (
	MinDifficulty  = 1
	MaxDifficulty  = 3
	MinProficiency = 0
	MaxProficiency = 5
)

type Word struct {
	ID               int64    `json:"id"`
	OriginalWord     string   `json:"originalWord"`
	Translation      string   `json:"translation"`
	Language         Language `json:"language"`
	DifficultyLevel  int      `json:"difficultyLevel"`
	ProficiencyLevel int      `json:"proficiencyLevel"`
}

// NewWord is the create/update payload. The server assigns id and proficiency.
type NewWord struct {
	OriginalWord    string   `json:"originalWord" validate:"required,max=255"`
	Translation     string   `json:"translation" validate:"required,max=255"`
	Language        Language `json:"language" validate:"required,oneof=english polish french german spanish"`
	DifficultyLevel int      `json:"difficultyLevel" validate:"min=1,max=3"`
}

func (w NewWord) Normalize() NewWord {
	w.OriginalWord = strings.TrimSpace(w.OriginalWord)
	w.Translation = strings.TrimSpace(w.Translation)
	w.Language = Language(strings.ToLower(strings.TrimSpace(string(w.Language))))
	return w
}

type TranslationCheck struct {
	OriginalWord string `json:"originalWord"`
	Translation  string `json:"translation"`
}

type CheckResult struct {
	Correct            bool   `json:"correct"`
	Message            string `json:"message"`
	CorrectTranslation string `json:"correctTranslation,omitempty"`
}
