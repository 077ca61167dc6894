package forms

import (
	"context"
	"database/sql"
	"eformify-backend/lib/telemetry"
	"eformify-backend/services/forms/db"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("eformify.services.forms")
var meter = telemetry.Meter("eformify.services.forms")

var responseCounter, _ = meter.Int64Counter("forms_service.responses")

const RecentFormsLimit = 10

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidResponse = errors.New("invalid response")
)

type Options struct {
	// directory listed by get_all_filenames
	FilesDir string
}

type Service struct {
	db     *sql.DB
	qry    *db.Queries
	config Options
}

func NewService(database *sql.DB, options Options) Service {
	return Service{
		db:     database,
		qry:    db.New(database),
		config: options,
	}
}

func normalizeQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		if q.Options == nil {
			q.Options = OptionList{}
		}
		out[i] = q
	}
	return out
}

func formFromRow(row db.Form) (Form, error) {
	var questions []Question
	err := json.Unmarshal([]byte(row.Questions), &questions)
	if err != nil {
		return Form{}, fmt.Errorf("decode questions of form %s: %w", row.ID, err)
	}
	return Form{
		ID:           row.ID,
		DocumentName: row.DocumentName,
		DocDesc:      row.DocDesc,
		Questions:    normalizeQuestions(questions),
		CreatedAt:    time.UnixMilli(row.CreatedAt).UTC(),
	}, nil
}

func formsFromRows(rows []db.Form) ([]Form, error) {
	out := make([]Form, len(rows))
	for i, row := range rows {
		form, err := formFromRow(row)
		if err != nil {
			return nil, err
		}
		out[i] = form
	}
	return out, nil
}

// AddForm stores a new form, the id and creation time are always assigned
// here.
func (s Service) AddForm(ctx context.Context, form Form) (Form, error) {
	ctx, span := tracer.Start(ctx, "AddForm")
	defer span.End()

	form.ID = uuid.NewString()
	form.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	form.Questions = normalizeQuestions(form.Questions)

	questions, err := json.Marshal(form.Questions)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to encode questions")
		return Form{}, err
	}
	err = s.qry.CreateForm(ctx, db.CreateFormParams{
		ID:           form.ID,
		DocumentName: form.DocumentName,
		DocDesc:      form.DocDesc,
		Questions:    string(questions),
		CreatedAt:    form.CreatedAt.UnixMilli(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to insert form")
		return Form{}, err
	}

	span.SetAttributes(attribute.String("form_id", form.ID))
	return form, nil
}

type AddQuestionsRequest struct {
	DocumentName string     `json:"document_name"`
	DocDesc      string     `json:"doc_desc"`
	Questions    []Question `json:"questions"`
	Answers      []string   `json:"answers"`
}

// AddQuestions stores a form whose answer key is given separately, the i-th
// answer belongs to the i-th question.
func (s Service) AddQuestions(ctx context.Context, req AddQuestionsRequest) (Form, error) {
	questions := make([]Question, len(req.Questions))
	for i, q := range req.Questions {
		if i < len(req.Answers) {
			q.Answer = req.Answers[i]
		}
		questions[i] = q
	}
	return s.AddForm(ctx, Form{
		DocumentName: req.DocumentName,
		DocDesc:      req.DocDesc,
		Questions:    questions,
	})
}

func (s Service) GetForm(ctx context.Context, id string) (Form, error) {
	ctx, span := tracer.Start(ctx, "GetForm")
	defer span.End()

	row, err := s.qry.GetForm(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Form{}, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read form")
		return Form{}, err
	}
	return formFromRow(row)
}

func (s Service) LatestForm(ctx context.Context) (Form, error) {
	ctx, span := tracer.Start(ctx, "LatestForm")
	defer span.End()

	row, err := s.qry.GetLatestForm(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return Form{}, ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read latest form")
		return Form{}, err
	}
	return formFromRow(row)
}

// ListForms returns every form, oldest first.
func (s Service) ListForms(ctx context.Context) ([]Form, error) {
	ctx, span := tracer.Start(ctx, "ListForms")
	defer span.End()

	rows, err := s.qry.ListForms(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list forms")
		return nil, err
	}
	return formsFromRows(rows)
}

// RecentForms returns at most `limit` forms, newest first.
func (s Service) RecentForms(ctx context.Context, limit int) ([]Form, error) {
	ctx, span := tracer.Start(ctx, "RecentForms")
	defer span.End()

	rows, err := s.qry.ListRecentForms(ctx, int64(limit))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list recent forms")
		return nil, err
	}
	return formsFromRows(rows)
}

type SubmitRequest struct {
	UserName   string   `json:"userName"`
	DocumentID string   `json:"documentId"`
	Answers    []Answer `json:"answers"`
}

func validateSubmission(req SubmitRequest) error {
	if strings.TrimSpace(req.UserName) == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidResponse)
	}
	if strings.TrimSpace(req.DocumentID) == "" {
		return fmt.Errorf("%w: documentId is required", ErrInvalidResponse)
	}
	for i, a := range req.Answers {
		if a.Question == "" || a.Answer == "" {
			return fmt.Errorf("%w: answer %d needs a question and an answer", ErrInvalidResponse, i)
		}
	}
	return nil
}

// SubmitResponses stores a respondent's answers to a form. Answers that do
// not say whether they are correct are graded against the form.
func (s Service) SubmitResponses(ctx context.Context, req SubmitRequest) (ResponseSet, error) {
	ctx, span := tracer.Start(ctx, "SubmitResponses")
	defer span.End()

	err := validateSubmission(req)
	if err != nil {
		span.SetStatus(codes.Error, "invalid submission")
		return ResponseSet{}, err
	}

	form, err := s.GetForm(ctx, req.DocumentID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read form")
		return ResponseSet{}, err
	}

	answers := make([]Answer, len(req.Answers))
	for i, a := range req.Answers {
		if a.IsCorrect == nil {
			correct := Grade(form.Questions, a.Question, a.Answer)
			a.IsCorrect = &correct
		}
		answers[i] = a
	}

	encoded, err := json.Marshal(answers)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to encode answers")
		return ResponseSet{}, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)
	response := ResponseSet{
		ID:         uuid.NewString(),
		UserName:   req.UserName,
		DocumentID: form.ID,
		Answers:    answers,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = s.qry.CreateResponse(ctx, db.CreateResponseParams{
		ID:        response.ID,
		UserName:  response.UserName,
		FormID:    response.DocumentID,
		Answers:   string(encoded),
		CreatedAt: now.UnixMilli(),
		UpdatedAt: now.UnixMilli(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to insert response")
		return ResponseSet{}, err
	}

	responseCounter.Add(ctx, 1)
	return response, nil
}

func (s Service) ListResponses(ctx context.Context) ([]ResponseSet, error) {
	ctx, span := tracer.Start(ctx, "ListResponses")
	defer span.End()

	rows, err := s.qry.ListResponses(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list responses")
		return nil, err
	}

	out := make([]ResponseSet, len(rows))
	for i, row := range rows {
		var answers []Answer
		err = json.Unmarshal([]byte(row.Answers), &answers)
		if err != nil {
			return nil, fmt.Errorf("decode answers of response %s: %w", row.ID, err)
		}
		out[i] = ResponseSet{
			ID:         row.ID,
			UserName:   row.UserName,
			DocumentID: row.FormID,
			Answers:    answers,
			CreatedAt:  time.UnixMilli(row.CreatedAt).UTC(),
			UpdatedAt:  time.UnixMilli(row.UpdatedAt).UTC(),
		}
	}
	return out, nil
}

func (s Service) ListFiles(ctx context.Context) ([]string, error) {
	_, span := tracer.Start(ctx, "ListFiles")
	defer span.End()

	names, err := ListFiles(s.config.FilesDir)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to read files dir")
		return nil, err
	}
	return names, nil
}
