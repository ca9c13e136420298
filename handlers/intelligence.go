package handlers

import (
	"net/http"

	"carebridge/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// advisorFallback is returned when the advisor backend is unavailable.
const advisorFallback = "抱歉，咨询助手暂时忙碌，请直接查看首页服务列表。"

// AskAdvisorHandler answers a consultation query. Backend failures degrade
// to the fallback copy instead of an error page.
func (hb *HandlerBundle) AskAdvisorHandler(c *gin.Context) {
	var req models.AdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	answer, err := hb.Advisor.Ask(c.Request.Context(), c.GetString("userID"), req.Query)
	if err != nil {
		hb.Logger.Warn("Advisor unavailable, serving fallback", zap.Error(err))
		c.JSON(http.StatusOK, models.AdvisorResponse{Answer: advisorFallback, Fallback: true})
		return
	}
	c.JSON(http.StatusOK, models.AdvisorResponse{Answer: answer})
}

// ClearAdvisorContextHandler drops the stored conversation.
func (hb *HandlerBundle) ClearAdvisorContextHandler(c *gin.Context) {
	if err := hb.Advisor.ClearContext(c.Request.Context(), c.GetString("userID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
