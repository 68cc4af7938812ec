/*
handlers.go - MCP tool handlers for the leave engine

PURPOSE:
  Exposes the leave workflow and accounting engine as MCP tools. Handles
  argument parsing, delegates to domain logic, and renders markdown
  results for the calling agent.

TOOLS:
  check_leave_balance     Balance for one type, or all relevant types
  get_employee_info       One employee's profile and entitlements
  list_all_employees      Directory sorted by employee id
  get_leave_requests      One employee's requests, newest first
  get_pending_requests    Org-wide pending queue, oldest first
  create_leave_request    Submit a new request (always pending)
  update_leave_status     Approve or reject a pending request
  cancel_leave_request    Withdraw a pending request
  calculate_working_days  Business-day arithmetic, no state

REQUEST FLOW:
  1. Pull arguments off the CallToolRequest
  2. Parse boundary values (dates, enums) - bad input never reaches core
  3. Call the service
  4. Render markdown, or map the error to its stable code

ERROR HANDLING:
  Every domain error kind maps to a distinct code so agents can branch:
    not_found, invalid_range, invalid_transition, inactive_employee,
    corrupt_data, io_error, invalid_argument, internal_error
  Codes prefix the message: "not_found: employee EMP009 not found".

SEE ALSO:
  - render.go: Markdown result bodies
  - server.go: Tool registration and transports
*/
package api

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/store/jsonfile"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for MCP tool and resource handlers.
type Handler struct {
	Service *leave.Service
	Store   *jsonfile.Store

	log *zap.Logger
}

// NewHandler creates a handler over the workflow service and the store.
// The store is only used to publish the raw snapshot resource.
func NewHandler(svc *leave.Service, store *jsonfile.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Service: svc,
		Store:   store,
		log:     log.Named("api"),
	}
}

// =============================================================================
// BALANCE AND EMPLOYEE TOOLS
// =============================================================================

// CheckLeaveBalance reports entitlement, usage, and availability. With no
// leave_type it covers every relevant type; with no year, the current one.
func (h *Handler) CheckLeaveBalance(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID, err := req.RequireString("employee_id")
	if err != nil {
		return h.invalidArgument(err), nil
	}
	year := req.GetInt("year", time.Now().Year())

	rawType := req.GetString("leave_type", "")
	if rawType == "" {
		balances, err := h.Service.Balances(ctx, employeeID, year)
		if err != nil {
			return h.toolError(err), nil
		}
		emp, err := h.Service.Employee(ctx, employeeID)
		if err != nil {
			return h.toolError(err), nil
		}
		return mcp.NewToolResultText(renderBalances(emp.Name, emp.ID, year, balances)), nil
	}

	leaveType, err := leave.ParseType(rawType)
	if err != nil {
		return h.invalidArgument(err), nil
	}
	balance, err := h.Service.Balance(ctx, employeeID, leaveType, year)
	if err != nil {
		return h.toolError(err), nil
	}
	return mcp.NewToolResultText(renderBalance(balance)), nil
}

// GetEmployeeInfo returns one employee's profile.
func (h *Handler) GetEmployeeInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID, err := req.RequireString("employee_id")
	if err != nil {
		return h.invalidArgument(err), nil
	}
	emp, err := h.Service.Employee(ctx, employeeID)
	if err != nil {
		return h.toolError(err), nil
	}
	return mcp.NewToolResultText(renderEmployee(emp)), nil
}

// ListAllEmployees returns the directory.
func (h *Handler) ListAllEmployees(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employees, err := h.Service.Employees(ctx)
	if err != nil {
		return h.toolError(err), nil
	}
	return mcp.NewToolResultText(renderEmployeeList(employees)), nil
}

// =============================================================================
// REQUEST QUERY TOOLS
// =============================================================================

// GetLeaveRequests lists one employee's requests, newest first, with an
// optional status filter.
func (h *Handler) GetLeaveRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID, err := req.RequireString("employee_id")
	if err != nil {
		return h.invalidArgument(err), nil
	}

	var filter leave.Status
	if raw := req.GetString("status", ""); raw != "" {
		filter, err = leave.ParseStatus(raw)
		if err != nil {
			return h.invalidArgument(err), nil
		}
	}

	requests, err := h.Service.List(ctx, employeeID, filter)
	if err != nil {
		return h.toolError(err), nil
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].SubmittedAt.After(requests[j].SubmittedAt)
	})
	return mcp.NewToolResultText(renderRequestList(employeeID, requests)), nil
}

// GetPendingRequests returns the org-wide approval queue, oldest first.
func (h *Handler) GetPendingRequests(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pending, err := h.Service.Pending(ctx)
	if err != nil {
		return h.toolError(err), nil
	}

	nameByID := make(map[string]string)
	if employees, err := h.Service.Employees(ctx); err == nil {
		for _, e := range employees {
			nameByID[e.ID] = e.Name
		}
	}
	return mcp.NewToolResultText(renderPending(pending, nameByID)), nil
}

// =============================================================================
// WORKFLOW TOOLS
// =============================================================================

// CreateLeaveRequest submits a new request. Days are derived by the
// working-day calculator under the leave type's counting policy; the
// request always starts pending.
func (h *Handler) CreateLeaveRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	employeeID, err := req.RequireString("employee_id")
	if err != nil {
		return h.invalidArgument(err), nil
	}
	rawType, err := req.RequireString("leave_type")
	if err != nil {
		return h.invalidArgument(err), nil
	}
	leaveType, err := leave.ParseType(rawType)
	if err != nil {
		return h.invalidArgument(err), nil
	}
	start, end, err := h.dateRange(req)
	if err != nil {
		return h.invalidArgument(err), nil
	}
	reason, err := req.RequireString("reason")
	if err != nil {
		return h.invalidArgument(err), nil
	}

	created, err := h.Service.Submit(ctx, leave.SubmitInput{
		EmployeeID: employeeID,
		Type:       leaveType,
		Start:      start,
		End:        end,
		Reason:     reason,
	})
	if err != nil {
		return h.toolError(err), nil
	}
	return mcp.NewToolResultText(renderRequestDetail("Leave Request Created", created)), nil
}

// UpdateLeaveStatus approves or rejects a pending request. After an
// approval it consults the accounting engine and appends an overdraft
// warning when the balance went negative; the decision itself is never
// blocked by the number.
func (h *Handler) UpdateLeaveStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID, err := req.RequireString("request_id")
	if err != nil {
		return h.invalidArgument(err), nil
	}
	rawStatus, err := req.RequireString("status")
	if err != nil {
		return h.invalidArgument(err), nil
	}
	status, err := leave.ParseStatus(rawStatus)
	if err != nil {
		return h.invalidArgument(err), nil
	}
	decidedBy, err := req.RequireString("approved_by")
	if err != nil {
		return h.invalidArgument(err), nil
	}

	decided, err := h.Service.Decide(ctx, leave.DecideInput{
		RequestID: requestID,
		Status:    status,
		DecidedBy: decidedBy,
		Comments:  req.GetString("comments", ""),
	})
	if err != nil {
		return h.toolError(err), nil
	}

	heading := "Leave Request Rejected"
	if decided.Status == leave.StatusApproved {
		heading = "Leave Request Approved"
	}
	text := renderRequestDetail(heading, decided)

	if decided.Status == leave.StatusApproved {
		balance, err := h.Service.Balance(ctx, decided.EmployeeID, decided.Type, decided.StartDate.Year())
		if err == nil && balance.Available < 0 {
			text += fmt.Sprintf("\nWarning: this approval overdraws the %d %s entitlement; available is now %d days.\n",
				balance.Year, string(balance.Type), balance.Available)
			h.log.Warn("approval overdraws balance",
				zap.String("request_id", decided.ID),
				zap.String("employee_id", decided.EmployeeID),
				zap.Int("available", balance.Available))
		}
	}
	return mcp.NewToolResultText(text), nil
}

// CancelLeaveRequest withdraws a pending request.
func (h *Handler) CancelLeaveRequest(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	requestID, err := req.RequireString("request_id")
	if err != nil {
		return h.invalidArgument(err), nil
	}
	cancelled, err := h.Service.Cancel(ctx, requestID)
	if err != nil {
		return h.toolError(err), nil
	}
	return mcp.NewToolResultText(renderRequestDetail("Leave Request Cancelled", cancelled)), nil
}

// CalculateWorkingDays counts days between two dates without touching
// any state.
func (h *Handler) CalculateWorkingDays(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := h.dateRange(req)
	if err != nil {
		return h.invalidArgument(err), nil
	}
	excludeWeekends := req.GetBool("exclude_weekends", true)

	days, err := leave.BusinessDays(start, end, excludeWeekends)
	if err != nil {
		return h.toolError(err), nil
	}
	return mcp.NewToolResultText(renderWorkingDays(start, end, excludeWeekends, days)), nil
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) dateRange(req mcp.CallToolRequest) (leave.Date, leave.Date, error) {
	rawStart, err := req.RequireString("start_date")
	if err != nil {
		return leave.Date{}, leave.Date{}, err
	}
	rawEnd, err := req.RequireString("end_date")
	if err != nil {
		return leave.Date{}, leave.Date{}, err
	}
	start, err := leave.ParseDate(rawStart)
	if err != nil {
		return leave.Date{}, leave.Date{}, err
	}
	end, err := leave.ParseDate(rawEnd)
	if err != nil {
		return leave.Date{}, leave.Date{}, err
	}
	return start, end, nil
}

// invalidArgument wraps boundary parse failures: missing arguments,
// malformed dates, values outside the closed enums.
func (h *Handler) invalidArgument(err error) *mcp.CallToolResult {
	h.log.Warn("tool call rejected", zap.String("code", "invalid_argument"), zap.Error(err))
	return mcp.NewToolResultError(fmt.Sprintf("invalid_argument: %v", err))
}

// toolError converts a domain error into its stable code/message pair.
func (h *Handler) toolError(err error) *mcp.CallToolResult {
	code := errorCode(err)
	h.log.Warn("tool call failed", zap.String("code", code), zap.Error(err))
	return mcp.NewToolResultError(fmt.Sprintf("%s: %v", code, err))
}

func errorCode(err error) string {
	switch {
	case leave.IsNotFound(err):
		return "not_found"
	case leave.IsInvalidRange(err):
		return "invalid_range"
	case leave.IsInvalidTransition(err):
		return "invalid_transition"
	case leave.IsInactiveEmployee(err):
		return "inactive_employee"
	case leave.IsCorruptData(err):
		return "corrupt_data"
	case leave.IsIO(err):
		return "io_error"
	case errors.Is(err, leave.ErrUnknownLeaveType), errors.Is(err, leave.ErrUnknownStatus):
		return "invalid_argument"
	default:
		return "internal_error"
	}
}
