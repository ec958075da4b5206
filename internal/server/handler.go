package server

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/abhisek/studyplanner/internal/actions"
	"github.com/abhisek/studyplanner/internal/flow"
)

const (
	msgInvalidBody    = "invalid request body"
	msgInvalidRequest = "invalid request"
)

// errorBody is the failure envelope, with field messages for requests that
// fail validation.
type errorBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type ActionHandler struct {
	svc *actions.Service
}

func NewActionHandler(svc *actions.Service) *ActionHandler {
	return &ActionHandler{svc: svc}
}

func (h *ActionHandler) GenerateDailyStudyPlan(c *fiber.Ctx) error {
	return handle(c, h.svc.GenerateDailyStudyPlan)
}

func (h *ActionHandler) AdaptStudyPlan(c *fiber.Ctx) error {
	return handle(c, h.svc.AdaptStudyPlan)
}

func (h *ActionHandler) RecommendResources(c *fiber.Ctx) error {
	return handle(c, h.svc.RecommendResources)
}

type validatable interface {
	Validate() error
}

// handle decodes the body, rejects invalid requests without calling the
// action and maps the action result to a status code.
func handle[Req validatable, Out any](c *fiber.Ctx, run func(context.Context, Req) actions.Result[Out]) error {
	var req Req
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: msgInvalidBody})
	}

	if err := req.Validate(); err != nil {
		body := errorBody{Error: msgInvalidRequest}
		var verr *flow.ValidationError
		if errors.As(err, &verr) {
			body.Fields = verr.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	res := run(c.UserContext(), req)
	if !res.Success {
		return c.Status(fiber.StatusBadGateway).JSON(res)
	}
	return c.Status(fiber.StatusOK).JSON(res)
}
