package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Counts(t *testing.T) {
	l, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "app/", l.Base)
	assert.Len(t, l.Folders, 6)
	assert.Len(t, l.Files, 14)
	assert.Len(t, l.FileMap(), 14, "file paths must be unique")
}

func TestDefault_Folders(t *testing.T) {
	l := MustDefault()
	assert.Equal(t, []string{
		"api/auth/",
		"admin/",
		"admin/dashboard/components/",
		"admin/settings/",
		"admin/components/",
		"utils/",
	}, l.Folders)
}

func TestDefault_FileContents(t *testing.T) {
	want := map[string]string{
		"api/auth/login.ts":                            "// Example login API route",
		"api/auth/logout.ts":                           "// Example logout API route",
		"api/auth/session.ts":                          "// Example session API route",
		"admin/layout.tsx":                             "// Layout component",
		"admin/page.tsx":                               "// Admin page",
		"admin/dashboard/page.tsx":                     "// Dashboard page",
		"admin/dashboard/components/DashboardCard.tsx": "// DashboardCard component",
		"admin/settings/page.tsx":                      "// Settings page",
		"admin/components/AdminHeader.tsx":             "// AdminHeader component",
		"admin/components/AdminSidebar.tsx":            "// AdminSidebar component",
		"admin/components/index.ts":                    "// Export components",
		"middleware.ts":                                "// Middleware logic",
		"utils/auth.ts":                                "// Authentication helpers",
		"utils/index.ts":                               "// Utility exports",
	}
	assert.Equal(t, want, MustDefault().FileMap())
}

func TestDefault_ReturnsCopies(t *testing.T) {
	a := MustDefault()
	a.Base = "elsewhere/"
	a.Folders[0] = "mutated/"
	a.Files[0].Content = "mutated"

	b := MustDefault()
	assert.Equal(t, "app/", b.Base)
	assert.Equal(t, "api/auth/", b.Folders[0])
	assert.Equal(t, "// Example login API route", b.Files[0].Content)
}

func TestDefault_Revision(t *testing.T) {
	v, err := MustDefault().Revision()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v.String())
}

func TestParse_Valid(t *testing.T) {
	l, err := Parse([]byte(`
version: "v2.1.0"
base: "out/"
folders: ["a/", "b/c/"]
files:
  - path: "a/x.ts"
    content: "// x"
  - path: "empty.ts"
    content: ""
`))
	require.NoError(t, err)
	assert.Equal(t, "out/", l.Base)
	assert.Equal(t, []string{"a/", "b/c/"}, l.Folders)
	assert.Equal(t, "", l.FileMap()["empty.ts"])

	v, err := l.Revision()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v.Major())
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		keyword string
	}{
		{
			name:    "missing base",
			doc:     "version: \"1.0.0\"\nfolders: []\nfiles: []\n",
			keyword: "required",
		},
		{
			name:    "unknown property",
			doc:     "version: \"1.0.0\"\nbase: app/\nfolders: []\nfiles: []\nextra: true\n",
			keyword: "additionalProperties",
		},
		{
			name:    "file without content",
			doc:     "version: \"1.0.0\"\nbase: app/\nfolders: []\nfiles:\n  - path: a.ts\n",
			keyword: "required",
		},
		{
			name:    "duplicate folder",
			doc:     "version: \"1.0.0\"\nbase: app/\nfolders: [a/, a/]\nfiles: []\n",
			keyword: "uniqueItems",
		},
		{
			name:    "duplicate file path",
			doc:     "version: \"1.0.0\"\nbase: app/\nfolders: []\nfiles:\n  - {path: a.ts, content: one}\n  - {path: a.ts, content: two}\n",
			keyword: "unique",
		},
		{
			name:    "bad version",
			doc:     "version: latest\nbase: app/\nfolders: []\nfiles: []\n",
			keyword: "version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.doc))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.NotEmpty(t, result.Issues)

			var keywords []string
			for _, issue := range result.Issues {
				keywords = append(keywords, issue.Keyword)
			}
			assert.Contains(t, keywords, tt.keyword)
		})
	}
}

func TestValidate_MalformedYAML(t *testing.T) {
	_, err := Validate([]byte("base: [unclosed"))
	assert.Error(t, err)
}

func TestParse_InvalidError(t *testing.T) {
	_, err := Parse([]byte("version: \"1.0.0\"\nfolders: []\nfiles: []\n"))
	require.Error(t, err)

	var invalid *InvalidError
	require.True(t, errors.As(err, &invalid))
	assert.NotEmpty(t, invalid.Issues)
	assert.Contains(t, err.Error(), "invalid layout")
}
