package logs

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
)

var (
	ErrNotText   = errors.New("uploaded log is not valid UTF-8 text")
	reTags       = regexp.MustCompile(`<[^>]+>`)
	reBlanks     = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlineRun = regexp.MustCompile(`\n+`)
)

// ExtractText returns the plain text of an uploaded log.
// .pdf and .docx exports are unpacked; anything else must be UTF-8 text.
// Empty text is not an error.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	default:
		if !utf8.Valid(data) {
			return "", ErrNotText
		}
		return string(data), nil
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		xml := strings.ReplaceAll(string(docXML), "</w:p>", "\n")
		xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
		return normalizeWhitespace(reTags.ReplaceAllString(xml, " ")), nil
	}
	return "", errors.New("no document.xml found in docx")
}

func normalizeWhitespace(s string) string {
	s = reBlanks.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reNewlineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
