package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridbase-io/gridbase-go/pkg/gridbase"
)

func TestFieldsClient_Create(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/tables/tbl-1/fields", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		var body map[string]any

		decodeRequestJSON(t, request, &body)
		assert.Equal(t, "Status", body["name"])
		assert.Equal(t, "singleSelect", body["type"])

		writer.WriteHeader(http.StatusCreated)
		writeEnvelope(t, writer, gridbase.Field{
			ID:   "fld-1",
			Name: "Status",
			Type: "singleSelect",
			Options: map[string]any{
				"choices": []any{"todo", "doing", "done"},
			},
		})
	})

	field, err := client.Fields().Create(context.Background(), "tbl-1", &gridbase.FieldCreateRequest{
		Name: "Status",
		Type: "singleSelect",
		Options: map[string]any{
			"choices": []string{"todo", "doing", "done"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "fld-1", field.ID)
	assert.NotNil(t, field.Options["choices"])
}

func TestFieldsClient_List(t *testing.T) {
	client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/tables/tbl-1/fields", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		writeEnvelope(t, writer, []gridbase.Field{
			{ID: "fld-1", Name: "Name", Type: "text"},
			{ID: "fld-2", Name: "Status", Type: "singleSelect"},
		})
	})

	fields, err := client.Fields().List(context.Background(), "tbl-1")
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "text", fields[0].Type)
}

func TestFieldsClient_GetUpdateDelete(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tables/tbl-1/fields/fld-1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)

			writeEnvelope(t, writer, gridbase.Field{ID: "fld-1", Name: "Name", Required: true})
		})

		field, err := client.Fields().Get(context.Background(), "tbl-1", "fld-1")
		require.NoError(t, err)
		assert.True(t, field.Required)
	})

	t.Run("update", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tables/tbl-1/fields/fld-1", request.URL.Path)
			assert.Equal(t, "PATCH", request.Method)

			writeEnvelope(t, writer, gridbase.Field{ID: "fld-1", Name: "Full Name"})
		})

		name := "Full Name"
		field, err := client.Fields().Update(context.Background(), "tbl-1", "fld-1", &gridbase.FieldUpdateRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Full Name", field.Name)
	})

	t.Run("delete", func(t *testing.T) {
		client := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/tables/tbl-1/fields/fld-1", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)

			writeEnvelope(t, writer, nil)
		})

		err := client.Fields().Delete(context.Background(), "tbl-1", "fld-1")
		require.NoError(t, err)
	})
}
