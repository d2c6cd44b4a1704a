package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

type CertificateData struct {
	UserName   string
	CourseName string
	IssuedBy   string
	Code       string
	Date       string
}

// RenderCertificate draws a landscape A4 completion certificate and
// returns the PDF bytes.
func RenderCertificate(data CertificateData) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetTitle("Certificado de Conclusão", true)
	doc.AddPage()

	// Core fonts are cp1252; translate the UTF-8 strings.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	width, height := doc.GetPageSize()

	// Double frame.
	doc.SetDrawColor(30, 64, 124)
	doc.SetLineWidth(1.2)
	doc.Rect(8, 8, width-16, height-16, "D")
	doc.SetLineWidth(0.4)
	doc.Rect(11, 11, width-22, height-22, "D")

	doc.SetTextColor(30, 64, 124)
	doc.SetFont("Helvetica", "B", 34)
	doc.SetXY(0, 32)
	doc.CellFormat(width, 14, tr("CERTIFICADO"), "", 1, "C", false, 0, "")

	doc.SetTextColor(60, 60, 60)
	doc.SetFont("Helvetica", "", 14)
	doc.SetXY(0, 58)
	doc.CellFormat(width, 8, tr("Certificamos que"), "", 1, "C", false, 0, "")

	doc.SetTextColor(20, 20, 20)
	doc.SetFont("Helvetica", "B", 26)
	doc.SetXY(0, 70)
	doc.CellFormat(width, 12, tr(data.UserName), "", 1, "C", false, 0, "")

	doc.SetTextColor(60, 60, 60)
	doc.SetFont("Helvetica", "", 14)
	doc.SetXY(0, 88)
	doc.CellFormat(width, 8, tr("concluiu com êxito o curso"), "", 1, "C", false, 0, "")

	doc.SetTextColor(30, 64, 124)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(0, 100)
	doc.CellFormat(width, 10, tr(data.CourseName), "", 1, "C", false, 0, "")

	doc.SetTextColor(60, 60, 60)
	doc.SetFont("Helvetica", "", 12)
	doc.SetXY(0, 124)
	doc.CellFormat(width, 7, tr(fmt.Sprintf("Emitido por %s em %s", data.IssuedBy, data.Date)), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(120, 120, 120)
	doc.SetXY(0, height-34)
	doc.CellFormat(width, 6, tr(fmt.Sprintf("Código de validação: %s", data.Code)), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
