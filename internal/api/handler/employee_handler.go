package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smarthr/hr-gateway/internal/api/metrics"
	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// EmployeeHandler serves the employee self-service dashboard.
type EmployeeHandler struct {
	employees ports.EmployeeService
}

func NewEmployeeHandler(employees ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// Profile returns the caller's normalized view model.
//
// @Summary      Own employee profile
// @Tags         employee
// @Produce      json
// @Success      200  {object}  domain.EmployeeViewModel
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /employee/profile [get]
func (h *EmployeeHandler) Profile(c echo.Context) error {
	_, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	vm, err := h.employees.MyProfile(c.Request().Context(), tok)
	if err != nil {
		if errors.Is(err, domain.ErrIncompleteProfile) {
			metrics.NormalizerErrorsTotal.Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, vm)
}

// RequestLeave creates a leave request for the caller. The employee
// identity comes from the caller's own profile, never from the request
// body, and the initial status is always PENDING.
//
// @Summary      Create a leave request
// @Tags         employee
// @Accept       json
// @Produce      json
// @Param        body  body      newLeaveRequestRequest  true  "Leave request"
// @Success      201   {object}  domain.LeaveRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /employee/leave-requests [post]
func (h *EmployeeHandler) RequestLeave(c echo.Context) error {
	_, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req newLeaveRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	vm, err := h.employees.MyProfile(c.Request().Context(), tok)
	if err != nil {
		return err
	}

	leave, err := h.employees.RequestLeave(c.Request().Context(), tok, ports.NewLeaveRequestInput{
		EmployeeID:   vm.Employee.ID,
		EmployeeName: vm.Employee.Name,
		Type:         req.Type,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Comments:     req.Comments,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, leave)
}
