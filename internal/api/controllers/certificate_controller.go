package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tescursos/internal/models/request_models"
	"tescursos/internal/services"
	"tescursos/pkg/pdf"
	"tescursos/pkg/utils"
)

const certificateIssuer = "T&S Cursos"

type CertificateController struct {
	certificateService services.CertificateServiceInterface
}

func NewCertificateController(certificateService services.CertificateServiceInterface) *CertificateController {
	return &CertificateController{
		certificateService: certificateService,
	}
}

// Issue godoc
// @Summary Issue the completion certificate as a PDF download
// @Tags Certificates
// @Accept json
// @Produce application/pdf
// @Param request body request_models.CertificateRequest true "Certificate payload"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /api/certificado [post]
func (ct *CertificateController) Issue(c *gin.Context) {
	var request request_models.CertificateRequest
	if err := c.ShouldBindJSON(&request); err != nil || request.UserID == "" {
		utils.RespondError(c, http.StatusBadRequest, "userId é obrigatório.")
		return
	}

	cert, err := ct.certificateService.Issue(c.Request.Context(), request.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	pdfBytes, err := pdf.RenderCertificate(pdf.CertificateData{
		UserName:   cert.UserName,
		CourseName: services.CourseName,
		IssuedBy:   certificateIssuer,
		Code:       cert.Code,
		Date:       utils.FormatLongDatePtBR(utils.NowBR()),
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Erro interno ao gerar certificado.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="certificado-tes-cursos.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
