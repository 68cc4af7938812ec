/*
server.go - MCP server assembly and transports

PURPOSE:
  Builds the MCP server, registers every tool and resource, and exposes
  the two transports: stdio for desktop agent hosts and streamable HTTP
  for network clients.

TRANSPORTS:
  stdio  The default. The protocol owns stdout, so all logging must go
         to stderr (cmd/server wires that up).
  http   Streamable HTTP mounted at /mcp on a chi router, with a
         /healthz probe beside it.

MIDDLEWARE STACK (http mode):
  1. RequestID:  Unique ID per request for tracing
  2. RealIP:     Client address behind proxies
  3. Recoverer:  Panic recovery (500 instead of crash)
  4. CORS:       Browser clients need Mcp-Session-Id exposed

SEE ALSO:
  - handlers.go: Tool implementations
  - resources.go: Resource implementations
  - cmd/server/main.go: Transport selection and shutdown
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/warp/leave-engine/leave"
	"github.com/warp/leave-engine/store/jsonfile"
)

const (
	serverName    = "hr-leave-management-server"
	serverVersion = "1.0.0"

	serverInstructions = "Employee leave management for a small organization: " +
		"check balances, submit and decide leave requests, and count working days. " +
		"Employee IDs look like EMP001, request IDs like req-<uuid>."
)

// =============================================================================
// SERVER
// =============================================================================

// Server wraps the MCP server with its registered tools and resources.
type Server struct {
	mcp     *server.MCPServer
	handler *Handler
	log     *zap.Logger
}

// New assembles the MCP server over the workflow service and the store.
func New(svc *leave.Service, store *jsonfile.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	h := NewHandler(svc, store, log)

	s := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions(serverInstructions),
		server.WithRecovery(),
	)
	registerTools(s, h)
	registerResources(s, h)

	return &Server{
		mcp:     s,
		handler: h,
		log:     log.Named("server"),
	}
}

// ServeStdio runs the protocol over stdin/stdout until the client hangs up.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// Router returns an http.Handler serving the streamable HTTP transport at
// /mcp plus a health probe. The caller owns the http.Server around it.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Mcp-Session-Id", "Last-Event-ID"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
		MaxAge:         300,
	}))

	r.Handle("/mcp", server.NewStreamableHTTPServer(s.mcp))
	r.Get("/healthz", s.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"name":    serverName,
		"version": serverVersion,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// =============================================================================
// REGISTRATION
// =============================================================================

func registerTools(s *server.MCPServer, h *Handler) {
	s.AddTool(mcp.NewTool("check_leave_balance",
		mcp.WithDescription("Check an employee's leave balance. Without leave_type it reports every relevant type; without year, the current one."),
		mcp.WithString("employee_id",
			mcp.Required(),
			mcp.Description("Employee ID, e.g. EMP001"),
		),
		mcp.WithString("leave_type",
			mcp.Description("Restrict the report to one leave type"),
			mcp.Enum(leaveTypeValues()...),
		),
		mcp.WithNumber("year",
			mcp.Description("Calendar year to report on; defaults to the current year"),
		),
	), h.CheckLeaveBalance)

	s.AddTool(mcp.NewTool("get_employee_info",
		mcp.WithDescription("Get an employee's profile: department, position, manager, hire date, and configured entitlements."),
		mcp.WithString("employee_id",
			mcp.Required(),
			mcp.Description("Employee ID, e.g. EMP001"),
		),
	), h.GetEmployeeInfo)

	s.AddTool(mcp.NewTool("list_all_employees",
		mcp.WithDescription("List every employee in the directory, sorted by employee ID."),
	), h.ListAllEmployees)

	s.AddTool(mcp.NewTool("get_leave_requests",
		mcp.WithDescription("List an employee's leave requests, newest first, optionally filtered by status."),
		mcp.WithString("employee_id",
			mcp.Required(),
			mcp.Description("Employee ID, e.g. EMP001"),
		),
		mcp.WithString("status",
			mcp.Description("Only return requests in this status"),
			mcp.Enum(statusValues()...),
		),
	), h.GetLeaveRequests)

	s.AddTool(mcp.NewTool("get_pending_requests",
		mcp.WithDescription("List every pending leave request across the organization, oldest first."),
	), h.GetPendingRequests)

	s.AddTool(mcp.NewTool("create_leave_request",
		mcp.WithDescription("Submit a leave request. Working days are computed from the date range under the leave type's counting rule; the request starts out pending."),
		mcp.WithString("employee_id",
			mcp.Required(),
			mcp.Description("Employee ID, e.g. EMP001"),
		),
		mcp.WithString("leave_type",
			mcp.Required(),
			mcp.Description("Type of leave being requested"),
			mcp.Enum(leaveTypeValues()...),
		),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("First day of leave, YYYY-MM-DD"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("Last day of leave, YYYY-MM-DD"),
		),
		mcp.WithString("reason",
			mcp.Required(),
			mcp.Description("Reason for the request"),
		),
	), h.CreateLeaveRequest)

	s.AddTool(mcp.NewTool("update_leave_status",
		mcp.WithDescription("Approve or reject a pending leave request. Approval never blocks on balance; an overdraft is reported as a warning."),
		mcp.WithString("request_id",
			mcp.Required(),
			mcp.Description("Request ID, e.g. req-1b4e28ba"),
		),
		mcp.WithString("status",
			mcp.Required(),
			mcp.Description("The decision"),
			mcp.Enum(string(leave.StatusApproved), string(leave.StatusRejected)),
		),
		mcp.WithString("approved_by",
			mcp.Required(),
			mcp.Description("Name or ID of the person deciding"),
		),
		mcp.WithString("comments",
			mcp.Description("Optional decision comments"),
		),
	), h.UpdateLeaveStatus)

	s.AddTool(mcp.NewTool("cancel_leave_request",
		mcp.WithDescription("Cancel a pending leave request. Approved, rejected, and cancelled requests cannot be cancelled."),
		mcp.WithString("request_id",
			mcp.Required(),
			mcp.Description("Request ID, e.g. req-1b4e28ba"),
		),
	), h.CancelLeaveRequest)

	s.AddTool(mcp.NewTool("calculate_working_days",
		mcp.WithDescription("Count working days between two dates inclusive. Reads no employee data."),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("Range start, YYYY-MM-DD"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("Range end, YYYY-MM-DD"),
		),
		mcp.WithBoolean("exclude_weekends",
			mcp.Description("Skip Saturdays and Sundays"),
			mcp.DefaultBool(true),
		),
	), h.CalculateWorkingDays)
}

func registerResources(s *server.MCPServer, h *Handler) {
	s.AddResource(mcp.NewResource(employeesURI, "Employee Directory",
		mcp.WithResourceDescription("All employees with departments, managers, and leave entitlements, as JSON."),
		mcp.WithMIMEType("application/json"),
	), h.EmployeeDirectory)

	s.AddResource(mcp.NewResource(policiesURI, "Leave Policies",
		mcp.WithResourceDescription("The leave policy handbook: per-type counting and accounting rules plus the approval process."),
		mcp.WithMIMEType("text/markdown"),
	), h.LeavePolicies)

	s.AddResource(mcp.NewResource(snapshotURI, "Raw Data Snapshot",
		mcp.WithResourceDescription("The persisted employee and request document exactly as stored on disk."),
		mcp.WithMIMEType("application/json"),
	), h.Snapshot)
}

func leaveTypeValues() []string {
	types := leave.Types()
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, string(t))
	}
	return out
}

func statusValues() []string {
	statuses := []leave.Status{
		leave.StatusPending,
		leave.StatusApproved,
		leave.StatusRejected,
		leave.StatusCancelled,
	}
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, string(s))
	}
	return out
}
