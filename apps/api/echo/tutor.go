package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Eringobraugh/inf80057-assistant-backend/core"
	"github.com/Eringobraugh/inf80057-assistant-backend/core/tutor"
)

const contextRoleKey = "role"

type tutorApi struct {
	svc      tutor.ServiceInterface
	validate *validator.Validate
}

func registerTutorAPI(g *echo.Group, svc tutor.ServiceInterface, validate *validator.Validate) {
	api := tutorApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("/health", api.health)
	g.POST("/answer", api.answer)
	g.POST("/next", api.next)
}

// Handlers

func (api *tutorApi) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Health())
}

func (api *tutorApi) answer(ctx echo.Context) error {
	var data AnswerRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AnswerRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	ctx.Set(contextRoleKey, *data.Role)

	res, err := api.svc.Answer(data.ToQuestion())
	if err != nil {
		return errors.Wrap(err, "answering question")
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *tutorApi) next(ctx echo.Context) error {
	var data NextRequest
	if err := ctx.Bind(&data); err != nil {
		if errors.Is(err, tutor.ErrInvalidWeek) {
			return core.NewValidationError(err, core.FieldError{Field: "state.week", Error: tutor.ErrInvalidWeek.Error()})
		}
		return errors.Wrap(err, "binding to NextRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}
	ctx.Set(contextRoleKey, *data.Role)

	res, err := api.svc.NextChecklist(*data.State.Week)
	if err != nil {
		return errors.Wrap(err, "looking up checklist")
	}
	return ctx.JSON(http.StatusOK, res)
}

type (
	// AnswerRequest is the body of POST /answer.
	// Pointers tell absent fields from empty ones.
	AnswerRequest struct {
		Role          *string `json:"role" validate:"required"`
		Question      *string `json:"question" validate:"required"`
		ContextPolicy *string `json:"context_policy"` // default: tutor.DefaultContextPolicy
		Mode          *string `json:"mode"`           // default: tutor.DefaultMode
	}

	// NextRequest is the body of POST /next. Keys of State other than week are ignored.
	NextRequest struct {
		Role  *string    `json:"role" validate:"required"`
		State *NextState `json:"state" validate:"required"`
	}

	NextState struct {
		Week *tutor.WeekID `json:"week" validate:"required"`
	}
)

func (ar *AnswerRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(ar)
}

// ToQuestion must only be called on a valid request.
func (ar *AnswerRequest) ToQuestion() tutor.Question {
	return tutor.NewQuestion(*ar.Role, *ar.Question, ar.ContextPolicy, ar.Mode)
}

func (nr *NextRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(nr)
}
