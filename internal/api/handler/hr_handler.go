package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/smarthr/hr-gateway/internal/api/metrics"
	"github.com/smarthr/hr-gateway/internal/core/domain"
	"github.com/smarthr/hr-gateway/internal/core/ports"
)

// HRHandler serves the HR dashboard: searches, pending-leave handling and
// employee creation. Search results are stored in the per-session dashboard
// state so a reloaded dashboard shows exactly what the last action left.
type HRHandler struct {
	hr    ports.HRService
	store ports.SessionStore
}

func NewHRHandler(hr ports.HRService, store ports.SessionStore) *HRHandler {
	return &HRHandler{hr: hr, store: store}
}

// Dashboard returns the current section and its single result slot.
//
// @Summary      Current HR dashboard state
// @Tags         rrhh
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Router       /rrhh/dashboard [get]
func (h *HRHandler) Dashboard(c echo.Context) error {
	sessionID, _, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	state, err := h.store.LoadDashboard(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDashboardResponse(state))
}

// SearchEmployee looks up an employee by username and moves the dashboard
// to showing-employee. On failure the dashboard returns to idle; the
// previous result is not left on screen next to an error.
//
// @Summary      Search an employee by username
// @Tags         rrhh
// @Produce      json
// @Param        username  query     string  true  "Account username"
// @Success      200       {object}  dashboardResponse
// @Failure      404       {object}  errorResponse
// @Router       /rrhh/employees [get]
func (h *HRHandler) SearchEmployee(c echo.Context) error {
	sessionID, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}

	state, err := h.store.LoadDashboard(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}

	_, searchErr := h.hr.SearchEmployee(c.Request().Context(), tok, username, &state)
	if saveErr := h.store.SaveDashboard(c.Request().Context(), sessionID, state); saveErr != nil {
		return saveErr
	}
	if searchErr != nil {
		if errors.Is(searchErr, domain.ErrIncompleteProfile) {
			metrics.NormalizerErrorsTotal.Inc()
		}
		return searchErr
	}
	return c.JSON(http.StatusOK, toDashboardResponse(state))
}

// SearchProjects lists projects, optionally filtered by name, and moves the
// dashboard to showing-projects.
//
// @Summary      Search projects
// @Tags         rrhh
// @Produce      json
// @Param        name  query     string  false  "Project name filter"
// @Success      200   {object}  dashboardResponse
// @Router       /rrhh/projects [get]
func (h *HRHandler) SearchProjects(c echo.Context) error {
	sessionID, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	state, err := h.store.LoadDashboard(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}

	_, searchErr := h.hr.SearchProjects(c.Request().Context(), tok, c.QueryParam("name"), &state)
	if saveErr := h.store.SaveDashboard(c.Request().Context(), sessionID, state); saveErr != nil {
		return saveErr
	}
	if searchErr != nil {
		return searchErr
	}
	return c.JSON(http.StatusOK, toDashboardResponse(state))
}

// PendingLeaves lists pending leave requests and moves the dashboard to
// showing-pending-leaves. Entries are returned exactly as the backend sent
// them; no status re-filtering happens here.
//
// @Summary      Pending leave requests
// @Tags         rrhh
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /rrhh/leave-requests/pending [get]
func (h *HRHandler) PendingLeaves(c echo.Context) error {
	sessionID, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	state, err := h.store.LoadDashboard(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}

	_, fetchErr := h.hr.PendingLeaves(c.Request().Context(), tok, &state)
	if saveErr := h.store.SaveDashboard(c.Request().Context(), sessionID, state); saveErr != nil {
		return saveErr
	}
	if fetchErr != nil {
		return fetchErr
	}
	return c.JSON(http.StatusOK, toDashboardResponse(state))
}

// ResolveLeave approves or rejects a leave request.
//
// @Summary      Approve or reject a leave request
// @Tags         rrhh
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Leave request ID"
// @Param        body  body      resolveLeaveRequest  true  "Target status"
// @Success      200   {object}  domain.LeaveRequest
// @Failure      400   {object}  errorResponse
// @Router       /rrhh/leave-requests/{id}/status [patch]
func (h *HRHandler) ResolveLeave(c echo.Context) error {
	_, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid leave request id")
	}

	var req resolveLeaveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	leave, err := h.hr.ResolveLeave(c.Request().Context(), tok, id, domain.LeaveStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leave)
}

// CreateEmployee creates a bare employee record.
//
// @Summary      Create an employee
// @Tags         rrhh
// @Accept       json
// @Param        body  body  newEmployeeRequest  true  "New employee"
// @Success      201   "created"
// @Failure      400   {object}  errorResponse
// @Router       /rrhh/employees [post]
func (h *HRHandler) CreateEmployee(c echo.Context) error {
	_, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req newEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.hr.CreateEmployee(c.Request().Context(), tok, toNewEmployeeInput(req)); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// CreateEmployeeComplete creates an employee together with their contract,
// assignment and skills in one backend call.
//
// @Summary      Create an employee with contract, assignment and skills
// @Tags         rrhh
// @Accept       json
// @Param        body  body  newEmployeeCompleteRequest  true  "New employee, complete"
// @Success      201   "created"
// @Failure      400   {object}  errorResponse
// @Router       /rrhh/employees/complete [post]
func (h *HRHandler) CreateEmployeeComplete(c echo.Context) error {
	_, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req newEmployeeCompleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.NewEmployeeCompleteInput{
		NewEmployeeInput:      toNewEmployeeInput(req.newEmployeeRequest),
		ContractType:          req.ContractType,
		ContractStartDate:     req.ContractStartDate,
		ContractEndDate:       req.ContractEndDate,
		AssignmentJobPosition: req.AssignmentJobPosition,
		SkillIDs:              req.SkillIDs,
	}
	if err := h.hr.CreateEmployeeComplete(c.Request().Context(), tok, in); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}

// Departments returns the department reference list for forms.
//
// @Summary      Department reference list
// @Tags         rrhh
// @Produce      json
// @Success      200  {array}  domain.Department
// @Router       /rrhh/departments [get]
func (h *HRHandler) Departments(c echo.Context) error {
	_, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	departments, err := h.hr.Departments(c.Request().Context(), tok)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

// Skills returns the skills reference list for forms.
//
// @Summary      Skills reference list
// @Tags         rrhh
// @Produce      json
// @Success      200  {array}  domain.SkillRef
// @Router       /rrhh/skills [get]
func (h *HRHandler) Skills(c echo.Context) error {
	_, tok, _, err := ctxSession(c)
	if err != nil {
		return err
	}
	skills, err := h.hr.Skills(c.Request().Context(), tok)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skills)
}

func toNewEmployeeInput(req newEmployeeRequest) ports.NewEmployeeInput {
	return ports.NewEmployeeInput{
		Name:             req.Name,
		Surname:          req.Surname,
		Email:            req.Email,
		Username:         req.Username,
		Password:         req.Password,
		Location:         req.Location,
		HireDate:         req.HireDate,
		DepartmentID:     req.DepartmentID,
		JobPositionTitle: req.JobPositionTitle,
		Role:             req.Role,
		WeeklyHours:      req.WeeklyHours,
		ProjectID:        req.ProjectID,
	}
}
