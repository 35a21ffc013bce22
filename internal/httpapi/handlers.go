package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"trivia-app/internal/trivia"
)

func (a *API) HandleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	difficulty := trivia.ParseDifficulty(r.URL.Query().Get("difficulty"))
	writeJSON(w, http.StatusOK, categoriesResponse{
		Difficulty: difficulty.String(),
		Categories: toCategoryResponses(a.categories.Sorted(), difficulty),
	})
}

func (a *API) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if a.questions == nil || a.store == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz service unavailable"})
		return
	}

	defer r.Body.Close()

	var request createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	category, ok := a.categories.Get(request.CategoryID)
	if !ok {
		writeServiceError(w, trivia.ErrCategoryNotFound)
		return
	}

	difficulty := trivia.ParseDifficulty(request.Difficulty)
	batch, err := a.questions.FetchQuestions(r.Context(), category, difficulty.String())
	if err != nil {
		writeFetchError(w, err)
		return
	}

	session := trivia.NewSession(a.shuffler)
	session.Start(batch)

	id := a.newID()
	snapshot := session.Snapshot()
	snapshot.CategoryID = category.ID
	snapshot.Difficulty = difficulty
	snapshot.UpdatedAt = time.Now().UTC()

	if err := a.store.SaveSession(r.Context(), id, snapshot); err != nil {
		a.logger.Error("failed to save session", zap.String("session_id", id), zap.Error(err))
		writeServiceError(w, err)
		return
	}

	a.logger.Info("session started",
		zap.String("session_id", id),
		zap.Int("category_id", category.ID),
		zap.String("difficulty", difficulty.String()),
		zap.Int("questions", len(batch)),
	)
	writeJSON(w, http.StatusCreated, toSessionResponse(id, snapshot))
}

// HandleSession serves GET (current view) and DELETE (go home) on one session.
func (a *API) HandleSession(w http.ResponseWriter, r *http.Request) {
	if a.store == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz service unavailable"})
		return
	}

	id := strings.TrimSpace(r.PathValue("session_id"))

	switch r.Method {
	case http.MethodGet:
		snapshot, err := a.store.LoadSession(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toSessionResponse(id, snapshot))
	case http.MethodDelete:
		a.mu.Lock()
		defer a.mu.Unlock()

		if err := a.store.DeleteSession(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		a.logger.Info("session abandoned", zap.String("session_id", id))
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w, http.MethodGet+", "+http.MethodDelete)
	}
}

func (a *API) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if a.store == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz service unavailable"})
		return
	}

	defer r.Body.Close()

	var request answerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if request.ChoiceIndex == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "choice_index is required"})
		return
	}

	id := strings.TrimSpace(r.PathValue("session_id"))

	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot, err := a.store.LoadSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	session := trivia.RestoreSession(snapshot, a.shuffler)
	correct, err := session.SelectAnswer(*request.ChoiceIndex)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	choices, _ := session.Choices()
	if _, err := a.save(r, id, snapshot, session); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Correct:      correct,
		CorrectIndex: trivia.CorrectIndex(choices),
		NextEnabled:  session.NextEnabled(),
	})
}

func (a *API) HandleNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if a.store == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "quiz service unavailable"})
		return
	}

	id := strings.TrimSpace(r.PathValue("session_id"))

	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot, err := a.store.LoadSession(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	session := trivia.RestoreSession(snapshot, a.shuffler)
	if session.State() == trivia.StateInProgress && !session.NextEnabled() {
		writeJSON(w, http.StatusConflict, errorResponse{Error: "select an answer before moving on"})
		return
	}
	if err := session.Advance(); err != nil {
		writeServiceError(w, err)
		return
	}

	updated, err := a.save(r, id, snapshot, session)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toSessionResponse(id, updated))
}

func (a *API) save(r *http.Request, id string, previous trivia.SessionSnapshot, session *trivia.Session) (trivia.SessionSnapshot, error) {
	next := session.Snapshot()
	next.CategoryID = previous.CategoryID
	next.Difficulty = previous.Difficulty
	next.UpdatedAt = time.Now().UTC()

	if err := a.store.SaveSession(r.Context(), id, next); err != nil {
		a.logger.Error("failed to save session", zap.String("session_id", id), zap.Error(err))
		return trivia.SessionSnapshot{}, err
	}
	return next, nil
}
