package annotate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/charlint/pkg/charlint"
)

func TestFormatViolation(t *testing.T) {
	tests := []struct {
		name string
		v    charlint.Violation
		want string
	}{
		{
			name: "content violation",
			v:    charlint.Violation{Path: "file1.txt", Line: 1, Message: "Привет world", Severity: charlint.SeverityError},
			want: "::error file=file1.txt,line=1::Привет world",
		},
		{
			name: "filename violation",
			v:    charlint.Violation{Path: "docs/отчёт.md", Message: charlint.FilenameCyrillicMessage, Severity: charlint.SeverityError},
			want: "::error file=docs/отчёт.md::filename contains Cyrillic",
		},
		{
			name: "percent doubled",
			v:    charlint.Violation{Path: "a.py", Line: 7, Message: "print('100% 😀 %s')"},
			want: "::error file=a.py,line=7::print('100%% 😀 %%s')",
		},
		{
			name: "surrounding whitespace trimmed",
			v:    charlint.Violation{Path: "a.txt", Line: 12, Message: "\t  hi :)  \r"},
			want: "::error file=a.txt,line=12::hi :)",
		},
		{
			name: "empty severity defaults to error",
			v:    charlint.Violation{Path: "b.txt", Line: 2, Message: "x 🚀"},
			want: "::error file=b.txt,line=2::x 🚀",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatViolation(tt.v))
		})
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Report(charlint.Violation{Path: "x.txt", Line: 3, Message: "50% 😀"}))
	require.NoError(t, w.Report(charlint.Violation{Path: "Ж.txt", Message: charlint.FilenameCyrillicMessage}))

	assert.Equal(t,
		"::error file=x.txt,line=3::50%% 😀\n"+
			"::error file=Ж.txt::filename contains Cyrillic\n",
		buf.String())
}

func TestWriter_Clean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).Clean())
	assert.Equal(t, "::notice:: No Cyrillic or emoji found\n", buf.String())
}
