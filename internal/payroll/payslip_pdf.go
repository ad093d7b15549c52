package payroll

import (
	"bytes"
	"fmt"
	"strings"
)

// PayslipDocumentLines flattens a payslip into the text lines printed on the
// generated document. Amounts are whole CFA francs.
func PayslipDocumentLines(p PayslipResponse) []string {
	lines := []string{
		"BULLETIN DE PAIE",
		fmt.Sprintf("Reference: %s", p.Reference),
		fmt.Sprintf("Periode: %s", p.Period),
	}
	if p.EmployeeName != "" {
		lines = append(lines, fmt.Sprintf("Employe: %s", p.EmployeeName))
	}
	lines = append(lines,
		fmt.Sprintf("Salaire de base: %d FCFA", p.BaseSalary),
		fmt.Sprintf("Sursalaire: %d FCFA", p.OverSalary),
		fmt.Sprintf("Indemnite de deplacement: %d FCFA", p.DisplacementAllowance),
		fmt.Sprintf("Indemnite de transport: %d FCFA", p.TransportAllowance),
		fmt.Sprintf("Brut: %d FCFA", p.GrossTotal),
		fmt.Sprintf("IR: %d FCFA", p.IncomeTax),
		fmt.Sprintf("IPRES: %d FCFA", p.PensionContribution),
		fmt.Sprintf("TRIMF: %d FCFA", p.MinimumLevy),
		fmt.Sprintf("Retenues: %d FCFA", p.DeductionTotal),
		fmt.Sprintf("NET A PAYER: %d FCFA", p.NetPayable),
	)
	if p.PaymentMethod != nil {
		lines = append(lines, fmt.Sprintf("Mode de paiement: %s", *p.PaymentMethod))
	}
	if p.PaymentDate != nil {
		lines = append(lines, fmt.Sprintf("Date de paiement: %s", *p.PaymentDate))
	}
	return lines
}

// BuildPayslipPDF renders the lines as a single-page PDF. The format is the
// bare minimum a viewer accepts; no layout engine involved.
func BuildPayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Bulletin de paie"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
