package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/work"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkHandler interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	ExportProjects(w http.ResponseWriter, r *http.Request)
	CreateProject(w http.ResponseWriter, r *http.Request)

	ListTasks(w http.ResponseWriter, r *http.Request)
	ExportTasks(w http.ResponseWriter, r *http.Request)
	CreateTask(w http.ResponseWriter, r *http.Request)
	UpdateTaskStatus(w http.ResponseWriter, r *http.Request)

	ListMilestones(w http.ResponseWriter, r *http.Request)
	ExportMilestones(w http.ResponseWriter, r *http.Request)
	CreateMilestone(w http.ResponseWriter, r *http.Request)
	UpdateMilestoneStatus(w http.ResponseWriter, r *http.Request)
}

type WorkHandlerImpl struct {
	workService work.WorkService
}

func NewWorkHandler(workService work.WorkService) WorkHandler {
	return &WorkHandlerImpl{workService: workService}
}

func (h *WorkHandlerImpl) ListProjects(w http.ResponseWriter, r *http.Request) {
	out, err := h.workService.ListProjects(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, out)
}

func (h *WorkHandlerImpl) ExportProjects(w http.ResponseWriter, r *http.Request) {
	file, err := h.workService.ExportProjects(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file)
}

func (h *WorkHandlerImpl) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req work.CreateProjectRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	project, err := h.workService.CreateProject(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Project created successfully", project)
}

func (h *WorkHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	out, err := h.workService.ListTasks(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, out)
}

func (h *WorkHandlerImpl) ExportTasks(w http.ResponseWriter, r *http.Request) {
	file, err := h.workService.ExportTasks(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file)
}

func (h *WorkHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req work.CreateTaskRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	task, err := h.workService.CreateTask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Task created successfully", task)
}

func (h *WorkHandlerImpl) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req work.UpdateTaskStatusRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	task, err := h.workService.UpdateTaskStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Task status updated", task)
}

func (h *WorkHandlerImpl) ListMilestones(w http.ResponseWriter, r *http.Request) {
	out, err := h.workService.ListMilestones(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, out)
}

func (h *WorkHandlerImpl) ExportMilestones(w http.ResponseWriter, r *http.Request) {
	file, err := h.workService.ExportMilestones(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file)
}

func (h *WorkHandlerImpl) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	var req work.CreateMilestoneRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	milestone, err := h.workService.CreateMilestone(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Milestone created successfully", milestone)
}

func (h *WorkHandlerImpl) UpdateMilestoneStatus(w http.ResponseWriter, r *http.Request) {
	var req work.UpdateMilestoneStatusRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	milestone, err := h.workService.UpdateMilestoneStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Milestone status updated", milestone)
}
