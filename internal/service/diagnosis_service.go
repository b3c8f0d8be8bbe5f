package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"vehicle-diagnosis-be/internal/dto"
	"vehicle-diagnosis-be/internal/pkg/apperror"
	"vehicle-diagnosis-be/internal/pkg/logger"
	"vehicle-diagnosis-be/pkg/diagnosis/engine"
	"vehicle-diagnosis-be/pkg/events"
	"vehicle-diagnosis-be/pkg/media"
	"vehicle-diagnosis-be/pkg/store"
)

type IDiagnosisService interface {
	DiagnoseText(ctx context.Context, req *dto.DiagnoseTextRequest) (*dto.DiagnosisResponse, error)
	DiagnoseVoice(ctx context.Context, form *dto.DiagnoseMediaForm, filename string, audio io.Reader) (*dto.DiagnosisResponse, error)
	DiagnoseImage(ctx context.Context, form *dto.DiagnoseMediaForm, filename string, image []byte) (*dto.DiagnosisResponse, error)
	Answer(ctx context.Context, req *dto.AnswerRequest) (*dto.DiagnosisResponse, error)
	Status(ctx context.Context, sessionId string) (*dto.DiagnosisResponse, error)
}

// SessionReader exposes stored diagnosis sessions to estimation and booking
type SessionReader interface {
	Get(ctx context.Context, id string) (*store.Session, error)
}

type diagnosisService struct {
	engine      *engine.Engine
	transcriber media.Transcriber
	vision      media.Vision
	events      events.Publisher
	logger      logger.ILogger
}

// NewDiagnosisService wires the engine to the HTTP layer. transcriber and vision may be nil
// when no provider is configured; the matching intake then reports unavailable.
func NewDiagnosisService(
	eng *engine.Engine,
	transcriber media.Transcriber,
	vision media.Vision,
	publisher events.Publisher,
	logger logger.ILogger,
) IDiagnosisService {
	ds := &diagnosisService{
		engine:      eng,
		transcriber: transcriber,
		vision:      vision,
		events:      publisher,
		logger:      logger,
	}
	eng.OnNarrowed(ds.publishNarrowed)
	return ds
}

func (ds *diagnosisService) DiagnoseText(ctx context.Context, req *dto.DiagnoseTextRequest) (*dto.DiagnosisResponse, error) {
	return ds.startOrResume(ctx, req.CustomerId, req.VehicleId, req.SessionId, req.Text)
}

// DiagnoseVoice transcribes the audio and starts a session. A supplied session id
// resumes that session without transcribing.
func (ds *diagnosisService) DiagnoseVoice(ctx context.Context, form *dto.DiagnoseMediaForm, filename string, audio io.Reader) (*dto.DiagnosisResponse, error) {
	if form.SessionId != "" {
		return ds.Status(ctx, form.SessionId)
	}
	if ds.transcriber == nil {
		return nil, fmt.Errorf("%w: voice transcription is not configured", apperror.ErrUnavailable)
	}

	text, err := ds.transcriber.Transcribe(ctx, filename, audio)
	if err != nil {
		ds.logger.Error("DIAGNOSIS", "Transcription failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("%w: transcription failed", apperror.ErrUnavailable)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no speech detected in audio", apperror.ErrBadRequest)
	}

	res, err := ds.startOrResume(ctx, form.CustomerId, form.VehicleId, form.SessionId, text)
	if err != nil {
		return nil, err
	}
	res.Transcription = text
	return res, nil
}

func (ds *diagnosisService) DiagnoseImage(ctx context.Context, form *dto.DiagnoseMediaForm, filename string, image []byte) (*dto.DiagnosisResponse, error) {
	if form.SessionId != "" {
		return ds.Status(ctx, form.SessionId)
	}
	if ds.vision == nil {
		return nil, fmt.Errorf("%w: image analysis is not configured", apperror.ErrUnavailable)
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: image is empty", apperror.ErrBadRequest)
	}

	analysis, err := ds.vision.Describe(ctx, image, media.ImageMIMEType(filename), form.Text)
	if err != nil {
		ds.logger.Error("DIAGNOSIS", "Image analysis failed", map[string]interface{}{"error": err.Error()})
		return nil, fmt.Errorf("%w: image analysis failed", apperror.ErrUnavailable)
	}

	res, err := ds.startOrResume(ctx, form.CustomerId, form.VehicleId, form.SessionId, media.CombineImageText(form.Text, analysis))
	if err != nil {
		return nil, err
	}
	res.ImageAnalysis = analysis
	return res, nil
}

func (ds *diagnosisService) Answer(ctx context.Context, req *dto.AnswerRequest) (*dto.DiagnosisResponse, error) {
	res, err := ds.engine.Answer(ctx, req.SessionId, req.Answer)
	if err != nil {
		return nil, mapEngineError(err)
	}
	return toDiagnosisResponse(res), nil
}

func (ds *diagnosisService) Status(ctx context.Context, sessionId string) (*dto.DiagnosisResponse, error) {
	res, err := ds.engine.Status(ctx, sessionId)
	if err != nil {
		return nil, mapEngineError(err)
	}
	return toDiagnosisResponse(res), nil
}

// startOrResume opens a new session, or re-enters an existing one when its id is supplied
func (ds *diagnosisService) startOrResume(ctx context.Context, customerId, vehicleId, sessionId, text string) (*dto.DiagnosisResponse, error) {
	if sessionId != "" {
		return ds.Status(ctx, sessionId)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: symptom text is required", apperror.ErrBadRequest)
	}

	res, err := ds.engine.Start(ctx, engine.StartInput{
		CustomerID: customerId,
		VehicleID:  vehicleId,
		Symptom:    text,
	})
	if err != nil {
		return nil, mapEngineError(err)
	}
	return toDiagnosisResponse(res), nil
}

func (ds *diagnosisService) publishNarrowed(ctx context.Context, s *store.Session) {
	shortlist := make([]events.NarrowedProblem, len(s.Shortlist))
	for i, c := range s.Shortlist {
		shortlist[i] = events.NarrowedProblem{ProblemID: c.ProblemID, Weight: s.Weights[c.ProblemID]}
	}
	if err := ds.events.Publish(ctx, events.DiagnosisNarrowed(s.ID, s.CustomerID, s.VehicleID, shortlist)); err != nil {
		ds.logger.Warn("DIAGNOSIS", "Failed to publish narrowed event", map[string]interface{}{
			"session_id": s.ID,
			"error":      err.Error(),
		})
	}
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, engine.ErrSessionNotFound):
		return fmt.Errorf("%w: %v", apperror.ErrNotFound, err)
	case errors.Is(err, engine.ErrIndexUnavailable):
		return fmt.Errorf("%w: %v", apperror.ErrUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", apperror.ErrUnavailable, err)
	default:
		return err
	}
}

func toDiagnosisResponse(res *engine.Result) *dto.DiagnosisResponse {
	out := &dto.DiagnosisResponse{
		SessionId:      res.SessionID,
		Stage:          string(res.Stage),
		Question:       res.Question,
		QuestionNumber: res.QuestionNumber,
		TotalQuestions: res.TotalQuestions,
		Candidates:     res.Candidates,
		Message:        res.Message,
	}
	for _, c := range res.TopProblems {
		out.TopProblems = append(out.TopProblems, dto.CandidateResponse{
			ProblemId:       c.ProblemID,
			ProblemName:     c.ProblemName,
			Description:     c.Description,
			SimilarityScore: c.Score,
		})
	}
	return out
}
