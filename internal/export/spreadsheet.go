package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/couchcryptid/hackathon-scout/internal/domain"
)

// WorksheetName is the single sheet's name in the spreadsheet export.
const WorksheetName = "2024-2025 Data"

// EncodeSpreadsheet serializes a record set as a SpreadsheetML 2003 workbook
// with one worksheet: a bold, inverted-color header row of the field names
// followed by one string-typed cell per field per record. Field and row
// order match the CSV encoding.
func EncodeSpreadsheet(set domain.RecordSet) []byte {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<Workbook xmlns="urn:schemas-microsoft-com:office:spreadsheet" xmlns:ss="urn:schemas-microsoft-com:office:spreadsheet">` + "\n")
	b.WriteString(" <Styles>\n")
	b.WriteString(`  <Style ss:ID="Header"><Font ss:Bold="1" ss:Color="#FFFFFF"/><Interior ss:Color="#4472C4" ss:Pattern="Solid"/></Style>` + "\n")
	b.WriteString(" </Styles>\n")
	fmt.Fprintf(&b, " <Worksheet ss:Name=\"%s\">\n", escapeXML(WorksheetName))
	b.WriteString("  <Table>\n")

	b.WriteString("   <Row>")
	for _, name := range domain.FieldNames {
		writeCell(&b, name, "Header")
	}
	b.WriteString("</Row>\n")

	for _, rec := range set {
		b.WriteString("   <Row>")
		for _, v := range rec.Values() {
			writeCell(&b, v, "")
		}
		b.WriteString("</Row>\n")
	}

	b.WriteString("  </Table>\n")
	b.WriteString(" </Worksheet>\n")
	b.WriteString("</Workbook>\n")
	return []byte(b.String())
}

func writeCell(b *strings.Builder, value, styleID string) {
	if styleID != "" {
		fmt.Fprintf(b, `<Cell ss:StyleID="%s">`, styleID)
	} else {
		b.WriteString("<Cell>")
	}
	b.WriteString(`<Data ss:Type="String">`)
	b.WriteString(escapeXML(value))
	b.WriteString("</Data></Cell>")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
