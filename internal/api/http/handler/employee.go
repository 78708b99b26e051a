package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/taskdeck/taskdeck_backend/internal/service/employee"
)

type EmployeeHandler struct {
	svc employee.Service
}

func NewEmployeeHandler(svc employee.Service) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func mapEmployeeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, employee.ErrNameRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, employee.ErrDuplicateName):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /employees
func (h *EmployeeHandler) List(c fiber.Ctx) error {
	employees, err := h.svc.List(c.Context())
	if err != nil {
		return mapEmployeeError(c, err)
	}
	return ok(c, employees)
}

// POST /employees
func (h *EmployeeHandler) Add(c fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	e, err := h.svc.Add(c.Context(), body.Name)
	if err != nil {
		return mapEmployeeError(c, err)
	}
	return created(c, e)
}
