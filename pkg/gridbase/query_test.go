package gridbase_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

func TestRecordListOptions_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *gridbase.RecordListOptions
		want url.Values
	}{
		{
			name: "empty options",
			opts: gridbase.NewRecordListOptions(),
			want: url.Values{},
		},
		{
			name: "paging and sort",
			opts: &gridbase.RecordListOptions{Limit: 25, Offset: 50, Sort: "-createdAt"},
			want: url.Values{
				"limit":  []string{"25"},
				"offset": []string{"50"},
				"sort":   []string{"-createdAt"},
			},
		},
		{
			name: "view scope",
			opts: &gridbase.RecordListOptions{ViewID: "viw-1"},
			want: url.Values{"viewId": []string{"viw-1"}},
		},
		{
			name: "field filters",
			opts: gridbase.NewRecordListOptions().WithFilter("Status", "open").WithFilter("Owner", "ada"),
			want: url.Values{
				"filter[Status]": []string{"open"},
				"filter[Owner]":  []string{"ada"},
			},
		},
		{
			name: "zero paging omitted",
			opts: &gridbase.RecordListOptions{Limit: 0, Offset: 0},
			want: url.Values{},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.opts.ToValues())
		})
	}
}

func TestRecordListOptions_WithFilterNilMap(t *testing.T) {
	t.Parallel()

	opts := &gridbase.RecordListOptions{}
	opts.WithFilter("Status", "open")

	assert.Equal(t, "open", opts.Filters["Status"])
}

func TestSearchOptions_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *gridbase.SearchOptions
		want url.Values
	}{
		{
			name: "nil options",
			opts: nil,
			want: url.Values{},
		},
		{
			name: "limit and offset",
			opts: &gridbase.SearchOptions{Limit: 10, Offset: 20},
			want: url.Values{
				"limit":  []string{"10"},
				"offset": []string{"20"},
			},
		},
		{
			name: "type restriction repeats",
			opts: &gridbase.SearchOptions{Types: []string{"base", "record"}},
			want: url.Values{"types": []string{"base", "record"}},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.opts.ToValues())
		})
	}
}

func TestExportOptions_ToValues(t *testing.T) {
	t.Parallel()

	var nilOpts *gridbase.ExportOptions

	assert.Equal(t, url.Values{}, nilOpts.ToValues())

	opts := &gridbase.ExportOptions{ViewID: "viw-1", Delimiter: ";"}
	assert.Equal(t, url.Values{
		"viewId":    []string{"viw-1"},
		"delimiter": []string{";"},
	}, opts.ToValues())
}

func TestImportOptions_ToFormFields(t *testing.T) {
	t.Parallel()

	var nilOpts *gridbase.ImportOptions

	assert.Empty(t, nilOpts.ToFormFields())

	opts := &gridbase.ImportOptions{HeaderRow: true, Delimiter: "\t"}
	assert.Equal(t, map[string]string{
		"headerRow": "true",
		"delimiter": "\t",
	}, opts.ToFormFields())

	assert.Empty(t, (&gridbase.ImportOptions{}).ToFormFields())
}
