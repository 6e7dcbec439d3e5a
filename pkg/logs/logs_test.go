package logs

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Unauthorized access from 10.0.0.4\nlater: ERROR disk full", Unauthorized},
		{"ERROR: disk full\nlogin success", Errors},
		{"backup finished: Success", Success},
		{"nothing to see here", Unknown},
		{"", Unknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.in), "input %q", tc.in)
	}
}

func TestExtractText_PlainText(t *testing.T) {
	out, err := ExtractText("auth.log", []byte("sshd: Failed password"))
	require.NoError(t, err)
	assert.Equal(t, "sshd: Failed password", out)

	out, err = ExtractText("noext", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestExtractText_EmptyIsClassified(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("  \n ")} {
		out, err := ExtractText("a.log", data)
		require.NoError(t, err)
		assert.Equal(t, Unknown, Classify(out))
	}
}

func TestExtractText_Rejects(t *testing.T) {
	_, err := ExtractText("a.log", []byte{0xff, 0xfe, 0xfd})
	assert.ErrorIs(t, err, ErrNotText)

	_, err = ExtractText("a.pdf", []byte("not a pdf"))
	assert.Error(t, err)
}

func TestExtractText_Docx(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<w:document><w:body><w:p><w:r><w:t>Unauthorized   login</w:t></w:r></w:p><w:p><w:r><w:t>from 10.0.0.9</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, err := ExtractText("incident.DOCX", buf.Bytes())
	require.NoError(t, err)
	assert.Contains(t, out, "Unauthorized login")
	assert.Equal(t, Unauthorized, Classify(out))
}
