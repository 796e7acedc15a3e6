package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/talentosplus/talentos-backend-go/internal/domain/dashboard"
	"github.com/talentosplus/talentos-backend-go/internal/handler/http/response"
	"github.com/talentosplus/talentos-backend-go/internal/service/assistant"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	Ask(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.Service
	assistantService assistant.AssistantService
}

func NewDashboardHandler(
	dashboardService dashboard.Service,
	assistantService assistant.AssistantService,
) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		assistantService: assistantService,
	}
}

func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (h *dashboardHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		response.BadRequest(w, "Question must not be empty", nil)
		return
	}

	answer := h.assistantService.Ask(r.Context(), req.Question)
	response.Success(w, askResponse{Answer: answer})
}
