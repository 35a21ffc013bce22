package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"trivia-app/internal/opentdb"
	"trivia-app/internal/trivia"
)

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, trivia.ErrSessionNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
	case errors.Is(err, trivia.ErrCategoryNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "category not found"})
	case errors.Is(err, trivia.ErrSessionNotInProgress):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "session is not in progress"})
	case errors.Is(err, trivia.ErrInvalidChoice):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "choice_index is out of range"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

// writeFetchError reports a failed call to the trivia service. Every such
// failure is a bad gateway; the body says which stage failed and how.
func writeFetchError(w http.ResponseWriter, err error) {
	var (
		fetchFailure  *opentdb.FetchFailure
		decodeFailure *opentdb.DecodeFailure
		codeFailure   *opentdb.ResponseCodeFailure
	)

	switch {
	case errors.As(err, &fetchFailure):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:      "trivia service returned an error",
			Stage:      string(fetchFailure.Stage),
			StatusCode: fetchFailure.StatusCode,
		})
	case errors.As(err, &decodeFailure):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: "trivia service sent a malformed response",
			Stage: string(decodeFailure.Stage),
		})
	case errors.As(err, &codeFailure):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: codeFailure.Error(),
			Stage: string(codeFailure.Stage),
		})
	default:
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "failed to fetch questions"})
	}
}

func toSessionResponse(id string, snapshot trivia.SessionSnapshot) sessionResponse {
	response := sessionResponse{
		SessionID:   id,
		State:       string(snapshot.State),
		CategoryID:  snapshot.CategoryID,
		Difficulty:  string(snapshot.Difficulty),
		Index:       snapshot.Index,
		Total:       len(snapshot.Questions),
		NextEnabled: snapshot.NextEnabled,
		UpdatedAt:   snapshot.UpdatedAt,
	}
	if snapshot.State != trivia.StateInProgress {
		return response
	}

	question := snapshot.Questions[snapshot.Index]
	response.Question = &questionView{
		Text:       question.Text,
		Category:   question.Category,
		Type:       question.Type,
		Difficulty: question.Difficulty,
	}

	response.Choices = make([]choiceView, 0, len(snapshot.Choices))
	for idx, choice := range snapshot.Choices {
		response.Choices = append(response.Choices, choiceView{Index: idx, Text: choice.Text})
	}

	if snapshot.Selected >= 0 {
		selected := snapshot.Selected
		response.Selected = &selected
	}
	return response
}

func toCategoryResponses(categories []*trivia.Category, difficulty trivia.Difficulty) []categoryResponse {
	response := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, categoryResponse{
			ID:           category.ID,
			Name:         category.Name,
			TotalCount:   category.TotalCount,
			EasyCount:    category.EasyCount,
			MediumCount:  category.MediumCount,
			HardCount:    category.HardCount,
			Available:    category.CountFor(difficulty),
			MaxFetchable: trivia.MaxFetchable(category, difficulty.String()),
		})
	}
	return response
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethod string) {
	w.Header().Set("Allow", allowedMethod)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
