package models

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`           // 0.0 - 1.0
		ResponseStatus  int     `json:"responseStatus"`  // HTTP-like status inside the body
		ResponseDetails string  `json:"responseDetails"` // "OK" or a quota message
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

// Suggestion is a machine translation offered when a word is added without one.
type Suggestion struct {
	Text         string
	Match        float64
	Source       Language
	Target       Language
	Reliable     bool
	Alternatives []string
}
