package tutor

import "github.com/Eringobraugh/inf80057-assistant-backend/core"

const PausedMessage = "Assistant paused by staff"

// ErrPaused is returned by every operation but Health while the assistant is paused.
var ErrPaused = core.NewUnavailableError(PausedMessage)

type (
	ServiceInterface interface {
		Answer(q Question) (AnswerResult, error)
		NextChecklist(week WeekID) (ChecklistResult, error)
		Health() Health
	}

	// Service answers from data loaded once at start up; none of its fields change afterwards,
	// so it is safe for concurrent use.
	Service struct {
		corpus   []Document
		schedule []WeekRecord
		paused   bool
		name     string
		version  string
	}

	Options struct {
		Corpus   []Document
		Schedule []WeekRecord
		Paused   bool
		Name     string
		Version  string
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(opts Options) *Service {
	return &Service{
		corpus:   opts.Corpus,
		schedule: opts.Schedule,
		paused:   opts.Paused,
		name:     opts.Name,
		version:  opts.Version,
	}
}

func (svc *Service) Answer(q Question) (AnswerResult, error) {
	if svc.paused {
		return AnswerResult{}, ErrPaused
	}
	return Resolve(q.Text, svc.corpus), nil
}

func (svc *Service) NextChecklist(week WeekID) (ChecklistResult, error) {
	if svc.paused {
		return ChecklistResult{}, ErrPaused
	}
	return Lookup(week, svc.schedule), nil
}

func (svc *Service) Health() Health {
	return Health{OK: !svc.paused, Service: svc.name, Version: svc.version}
}
