package forms

import (
	"eformify-backend/lib/serviceutil"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
)

func (s Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /add_questions", s.handleAddQuestions)
	mux.HandleFunc("POST /add_form", s.handleAddForm)
	mux.HandleFunc("GET /questions/latest", s.handleLatestQuestions)
	mux.HandleFunc("GET /questions", s.handleQuestions)
	mux.HandleFunc("GET /get_recent_forms", s.handleRecentForms)
	mux.HandleFunc("GET /get_form/{id}", s.handleGetForm("id", "Form not found", "An error occurred while fetching form"))
	mux.HandleFunc("GET /data/{doc_id}", s.handleGetForm("doc_id", "Data not found", "An error occurred while fetching data"))
	mux.HandleFunc("POST /submit_responses", s.handleSubmitResponses)
	mux.HandleFunc("GET /responses", s.handleResponses)
	mux.HandleFunc("POST /generate_questions", s.handleGenerateQuestions)
	mux.HandleFunc("GET /get_all_filenames", s.handleFilenames)
}

type resultBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func (s Service) handleAddQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AddQuestionsRequest
	err := serviceutil.ReadJSON(r, &req)
	if err == nil {
		_, err = s.AddQuestions(ctx, req)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to save form data", "err", err)
		serviceutil.WriteJSON(w, http.StatusInternalServerError, resultBody{
			Success: false,
			Message: "Failed to save form data",
			Error:   err.Error(),
		})
		return
	}
	serviceutil.WriteJSON(w, http.StatusOK, resultBody{
		Success: true,
		Message: "Form data saved successfully!",
	})
}

func (s Service) handleAddForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var form Form
	err := serviceutil.ReadJSON(r, &form)
	if err == nil {
		form, err = s.AddForm(ctx, form)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to add form", "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "Failed to add form")
		return
	}
	serviceutil.WriteJSON(w, http.StatusCreated, form)
}

func (s Service) handleLatestQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	form, err := s.LatestForm(ctx)
	if errors.Is(err, ErrNotFound) {
		serviceutil.WriteError(w, http.StatusNotFound, "No questions found")
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch questions", "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "An error occurred while fetching questions")
		return
	}
	serviceutil.WriteJSON(w, http.StatusOK, form)
}

func (s Service) handleQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	forms, err := s.ListForms(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch questions", "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "An error occurred while fetching questions")
		return
	}
	if len(forms) == 0 {
		serviceutil.WriteError(w, http.StatusNotFound, "No questions found")
		return
	}
	serviceutil.WriteJSON(w, http.StatusOK, forms)
}

type recentFormsBody struct {
	Success     bool   `json:"success"`
	RecentForms []Form `json:"recentForms"`
}

func (s Service) handleRecentForms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	forms, err := s.RecentForms(ctx, RecentFormsLimit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch recent forms", "err", err)
		serviceutil.WriteJSON(w, http.StatusInternalServerError, resultBody{
			Success: false,
			Message: "Failed to fetch recent forms",
		})
		return
	}
	serviceutil.WriteJSON(w, http.StatusOK, recentFormsBody{
		Success:     true,
		RecentForms: forms,
	})
}

// handleGetForm serves a single form, `param` is the path wildcard holding
// its id.
func (s Service) handleGetForm(param, notFound, failed string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		form, err := s.GetForm(ctx, r.PathValue(param))
		if errors.Is(err, ErrNotFound) {
			serviceutil.WriteError(w, http.StatusNotFound, notFound)
			return
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to fetch form", "err", err)
			serviceutil.WriteError(w, http.StatusInternalServerError, failed)
			return
		}
		serviceutil.WriteJSON(w, http.StatusOK, form)
	}
}

func (s Service) handleSubmitResponses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SubmitRequest
	err := serviceutil.ReadJSON(r, &req)
	if err == nil {
		_, err = s.SubmitResponses(ctx, req)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to save responses", "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "An error occurred while saving responses")
		return
	}
	serviceutil.WriteJSON(w, http.StatusOK, resultBody{
		Success: true,
		Message: "Responses saved successfully!",
	})
}

func (s Service) handleResponses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	responses, err := s.ListResponses(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch responses", "err", err)
		serviceutil.WriteJSON(w, http.StatusInternalServerError, map[string]string{"message": err.Error()})
		return
	}
	serviceutil.WriteJSON(w, http.StatusOK, responses)
}

type generateRequest struct {
	TopicName    string      `json:"topicName"`
	NumQuestions json.Number `json:"numQuestions"`
}

type generateBody struct {
	Questions []GeneratedQuestion `json:"questions"`
}

func (s Service) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	err := serviceutil.ReadJSON(r, &req)
	if err != nil {
		slog.WarnContext(r.Context(), "invalid generate_questions body", "err", err)
	}
	// fractional counts round up, "2.5" questions means three
	count, _ := req.NumQuestions.Float64()
	if math.IsNaN(count) || count < 0 {
		count = 0
	}
	count = math.Min(count, maxGeneratedQuestions)
	serviceutil.WriteJSON(w, http.StatusOK, generateBody{
		Questions: GenerateQuestions(req.TopicName, int(math.Ceil(count))),
	})
}

func (s Service) handleFilenames(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names, err := s.ListFiles(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "unable to scan directory", "dir", s.config.FilesDir, "err", err)
		serviceutil.WriteError(w, http.StatusInternalServerError, "unable to scan directory")
		return
	}
	serviceutil.WriteJSON(w, http.StatusOK, names)
}
