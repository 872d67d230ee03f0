package http

import (
	"net/http"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/remuneration"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/response"
)

type RemunerationHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type RemunerationHandlerImpl struct {
	remunerationService remuneration.RemunerationService
}

func NewRemunerationHandler(remunerationService remuneration.RemunerationService) RemunerationHandler {
	return &RemunerationHandlerImpl{remunerationService: remunerationService}
}

// Summary accepts the employees view filters, so a department or salary band
// can be summarised on its own.
func (h *RemunerationHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.remunerationService.GetSummary(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

func (h *RemunerationHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	file, err := h.remunerationService.ExportSalaries(r.Context(), r.URL.Query())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, file)
}
