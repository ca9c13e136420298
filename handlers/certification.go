package handlers

import (
	"net/http"

	"carebridge/models"
	"carebridge/services/certification"

	"github.com/gin-gonic/gin"
)

// StartCertificationHandler opens a certification wizard run. Applicants
// certify from their customer account; their user ID becomes the provider ID
// once the roster entry is created.
func (hb *HandlerBundle) StartCertificationHandler(c *gin.Context) {
	session, err := hb.Certification.StartCertification(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetCertificationHandler returns the current wizard state.
func (hb *HandlerBundle) GetCertificationHandler(c *gin.Context) {
	session, err := hb.Certification.GetCertification(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ChooseRoleHandler records the provider role.
func (hb *HandlerBundle) ChooseRoleHandler(c *gin.Context) {
	var input struct {
		Role models.ProviderRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Certification.ChooseRole(c.Request.Context(), c.Param("sessionID"), input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateCertProfileHandler applies profile-form changes.
func (hb *HandlerBundle) UpdateCertProfileHandler(c *gin.Context) {
	var upd certification.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Certification.UpdateProfile(c.Request.Context(), c.Param("sessionID"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitCertProfileHandler advances to document upload.
func (hb *HandlerBundle) SubmitCertProfileHandler(c *gin.Context) {
	session, err := hb.Certification.SubmitProfile(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AttachCertificateHandler stores an uploaded certificate reference.
func (hb *HandlerBundle) AttachCertificateHandler(c *gin.Context) {
	var input struct {
		Kind string `json:"kind" binding:"required"`
		Ref  string `json:"ref"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := hb.Certification.AttachCertificate(c.Request.Context(), c.Param("sessionID"), input.Kind, input.Ref)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdvanceToLivenessHandler moves to the liveness check.
func (hb *HandlerBundle) AdvanceToLivenessHandler(c *gin.Context) {
	session, err := hb.Certification.AdvanceToLiveness(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RunFaceVerificationHandler runs the liveness check.
func (hb *HandlerBundle) RunFaceVerificationHandler(c *gin.Context) {
	session, err := hb.Certification.RunFaceVerification(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// FinishCertificationHandler closes the wizard after the completion screen.
func (hb *HandlerBundle) FinishCertificationHandler(c *gin.Context) {
	if err := hb.Certification.Finish(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
