package gridbase

import (
	"net/url"
	"strconv"
)

// RecordListOptions expresses list options for the records endpoint. The
// service applies Filters verbatim against field values; keys are field
// names.
type RecordListOptions struct {
	Limit   int
	Offset  int
	Sort    string
	ViewID  string
	Filters map[string]string
}

// NewRecordListOptions creates empty record list options.
func NewRecordListOptions() *RecordListOptions {
	return &RecordListOptions{
		Filters: make(map[string]string),
	}
}

// WithFilter adds a field filter and returns the options for chaining.
func (o *RecordListOptions) WithFilter(field, value string) *RecordListOptions {
	if o.Filters == nil {
		o.Filters = make(map[string]string)
	}

	o.Filters[field] = value

	return o
}

// ToValues converts the options to URL query values.
func (o *RecordListOptions) ToValues() url.Values {
	values := url.Values{}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Offset > 0 {
		values.Set("offset", strconv.Itoa(o.Offset))
	}

	if o.Sort != "" {
		values.Set("sort", o.Sort)
	}

	if o.ViewID != "" {
		values.Set("viewId", o.ViewID)
	}

	for field, value := range o.Filters {
		values.Set("filter["+field+"]", value)
	}

	return values
}

// SearchOptions narrows a search request.
type SearchOptions struct {
	Limit  int
	Offset int
	// Types restricts result kinds ("base", "table", "record").
	Types []string
}

// ToValues converts the options to URL query values. The query term itself is
// added by the search client.
func (o *SearchOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Offset > 0 {
		values.Set("offset", strconv.Itoa(o.Offset))
	}

	for _, kind := range o.Types {
		values.Add("types", kind)
	}

	return values
}

// ExportOptions tunes a CSV export.
type ExportOptions struct {
	ViewID string
	// Delimiter overrides the service's default comma separator.
	Delimiter string
}

// ToValues converts the options to URL query values.
func (o *ExportOptions) ToValues() url.Values {
	values := url.Values{}

	if o == nil {
		return values
	}

	if o.ViewID != "" {
		values.Set("viewId", o.ViewID)
	}

	if o.Delimiter != "" {
		values.Set("delimiter", o.Delimiter)
	}

	return values
}

// ImportOptions tunes a CSV import. Values are sent as multipart form fields
// alongside the file.
type ImportOptions struct {
	// HeaderRow marks the first CSV row as field names.
	HeaderRow bool
	Delimiter string
}

// ToFormFields converts the options to multipart form field values.
func (o *ImportOptions) ToFormFields() map[string]string {
	fields := make(map[string]string)

	if o == nil {
		return fields
	}

	if o.HeaderRow {
		fields["headerRow"] = "true"
	}

	if o.Delimiter != "" {
		fields["delimiter"] = o.Delimiter
	}

	return fields
}
