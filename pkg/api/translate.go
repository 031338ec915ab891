package api

// TranslateRequest тело запроса POST /translate
type TranslateRequest struct {
	Text string `json:"text"` // английский текст, 1-500 символов
}

// TranslateResponse ответ сервиса перевода
type TranslateResponse struct {
	Vietnamese string `json:"vietnamese"`
	Phonetic   string `json:"phonetic"`
	Category   string `json:"category"`
}
