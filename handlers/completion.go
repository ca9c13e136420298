package handlers

import (
	"net/http"

	"carebridge/models"
	"carebridge/services/completion"

	"github.com/gin-gonic/gin"
)

// StartCompletionHandler opens a task-completion flow for an order.
func (hb *HandlerBundle) StartCompletionHandler(c *gin.Context) {
	var input struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Completion.StartCompletion(c.Request.Context(), c.GetString("providerID"), input.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetCompletionHandler returns the current flow state.
func (hb *HandlerBundle) GetCompletionHandler(c *gin.Context) {
	session, err := hb.Completion.GetCompletion(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitVerificationCodeHandler checks the visit code.
func (hb *HandlerBundle) SubmitVerificationCodeHandler(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Completion.SubmitVerificationCode(c.Request.Context(), c.Param("sessionID"), input.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateRecordHandler applies care-record field changes.
func (hb *HandlerBundle) UpdateRecordHandler(c *gin.Context) {
	var upd completion.RecordUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Completion.UpdateRecord(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AddSitePhotosHandler appends site photo refs.
func (hb *HandlerBundle) AddSitePhotosHandler(c *gin.Context) {
	var input struct {
		Refs []string `json:"refs" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Completion.AddSitePhotos(c.Request.Context(), c.Param("sessionID"), input.Refs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveSitePhotoHandler drops one site photo by index.
func (hb *HandlerBundle) RemoveSitePhotoHandler(c *gin.Context) {
	var input struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Completion.RemoveSitePhoto(c.Request.Context(), c.Param("sessionID"), input.Index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdvanceToSignHandler moves to the signature pad.
func (hb *HandlerBundle) AdvanceToSignHandler(c *gin.Context) {
	session, err := hb.Completion.AdvanceToSign(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ApplyPointerEventsHandler folds a batch of signature samples.
func (hb *HandlerBundle) ApplyPointerEventsHandler(c *gin.Context) {
	var input struct {
		Events []models.PointerEvent `json:"events" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Completion.ApplyPointerEvents(c.Request.Context(), c.Param("sessionID"), input.Events)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ClearSignatureHandler wipes the signature pad.
func (hb *HandlerBundle) ClearSignatureHandler(c *gin.Context) {
	session, err := hb.Completion.ClearSignature(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmSignatureHandler renders and stores the signature.
func (hb *HandlerBundle) ConfirmSignatureHandler(c *gin.Context) {
	session, err := hb.Completion.ConfirmSignature(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitCompletionHandler files the care record and completes the order.
func (hb *HandlerBundle) SubmitCompletionHandler(c *gin.Context) {
	order, err := hb.Completion.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ReportExceptionHandler ends the visit abnormally.
func (hb *HandlerBundle) ReportExceptionHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := hb.Completion.ReportException(c.Request.Context(), c.Param("sessionID"), input.Reason); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListExceptionReasonsHandler returns the fixed abnormal-exit reason list.
func (hb *HandlerBundle) ListExceptionReasonsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, completion.ExceptionReasons)
}
