package httpapi

import "time"

type categoryResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	TotalCount   int    `json:"total_count"`
	EasyCount    int    `json:"easy_count"`
	MediumCount  int    `json:"medium_count"`
	HardCount    int    `json:"hard_count"`
	Available    int    `json:"available"`
	MaxFetchable int    `json:"max_fetchable"`
}

type categoriesResponse struct {
	Difficulty string             `json:"difficulty"`
	Categories []categoryResponse `json:"categories"`
}

type createSessionRequest struct {
	CategoryID int    `json:"category_id"`
	Difficulty string `json:"difficulty"`
}

type questionView struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

type choiceView struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type sessionResponse struct {
	SessionID   string        `json:"session_id"`
	State       string        `json:"state"`
	CategoryID  int           `json:"category_id"`
	Difficulty  string        `json:"difficulty"`
	Index       int           `json:"index"`
	Total       int           `json:"total"`
	Question    *questionView `json:"question,omitempty"`
	Choices     []choiceView  `json:"choices,omitempty"`
	Selected    *int          `json:"selected,omitempty"`
	NextEnabled bool          `json:"next_enabled"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type answerRequest struct {
	ChoiceIndex *int `json:"choice_index"`
}

type answerResponse struct {
	Correct      bool `json:"correct"`
	CorrectIndex int  `json:"correct_index"`
	NextEnabled  bool `json:"next_enabled"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Stage      string `json:"stage,omitempty"`
	StatusCode int    `json:"status_code,omitempty"`
}
