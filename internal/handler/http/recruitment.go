package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecruitmentHandler interface {
	ListPostings(w http.ResponseWriter, r *http.Request)
	ExportPostings(w http.ResponseWriter, r *http.Request)
	GetPosting(w http.ResponseWriter, r *http.Request)
	CreatePosting(w http.ResponseWriter, r *http.Request)
	ClosePosting(w http.ResponseWriter, r *http.Request)

	ListApplications(w http.ResponseWriter, r *http.Request)
	ExportApplications(w http.ResponseWriter, r *http.Request)
	GetApplication(w http.ResponseWriter, r *http.Request)
	CreateApplication(w http.ResponseWriter, r *http.Request)
	RateApplication(w http.ResponseWriter, r *http.Request)

	// MoveApplication returns a handler moving an application to next.
	MoveApplication(next recruitment.ApplicationStatus) http.HandlerFunc
}

type RecruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &RecruitmentHandlerImpl{recruitmentService: recruitmentService}
}

func (h *RecruitmentHandlerImpl) ListPostings(w http.ResponseWriter, r *http.Request) {
	out, err := h.recruitmentService.ListJobPostings(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, out)
}

func (h *RecruitmentHandlerImpl) ExportPostings(w http.ResponseWriter, r *http.Request) {
	file, err := h.recruitmentService.ExportJobPostings(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file)
}

func (h *RecruitmentHandlerImpl) GetPosting(w http.ResponseWriter, r *http.Request) {
	posting, err := h.recruitmentService.GetJobPosting(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, posting)
}

func (h *RecruitmentHandlerImpl) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateJobPostingRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	posting, err := h.recruitmentService.CreateJobPosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Job posting created successfully", posting)
}

func (h *RecruitmentHandlerImpl) ClosePosting(w http.ResponseWriter, r *http.Request) {
	posting, err := h.recruitmentService.CloseJobPosting(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Job posting closed", posting)
}

func (h *RecruitmentHandlerImpl) ListApplications(w http.ResponseWriter, r *http.Request) {
	out, err := h.recruitmentService.ListApplications(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.List(w, out)
}

func (h *RecruitmentHandlerImpl) ExportApplications(w http.ResponseWriter, r *http.Request) {
	file, err := h.recruitmentService.ExportApplications(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file)
}

func (h *RecruitmentHandlerImpl) GetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.recruitmentService.GetApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, app)
}

func (h *RecruitmentHandlerImpl) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateJobApplicationRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	app, err := h.recruitmentService.CreateApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Application submitted successfully", app)
}

func (h *RecruitmentHandlerImpl) RateApplication(w http.ResponseWriter, r *http.Request) {
	var req recruitment.RateApplicationRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	app, err := h.recruitmentService.RateApplication(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Application rated", app)
}

func (h *RecruitmentHandlerImpl) MoveApplication(next recruitment.ApplicationStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app, err := h.recruitmentService.MoveApplication(r.Context(), chi.URLParam(r, "id"), next)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "Application moved to "+string(next), app)
	}
}
